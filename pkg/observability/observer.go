package observability

import (
	"context"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
)

type (
	Field string

	contextKey int
)

const (
	FieldRequestID Field = "requestID"
)

const fieldsContextKey contextKey = iota

type (
	Observer interface {
		Field(context.Context, Field) string
		WithField(context.Context, Field, string) context.Context
	}

	ObserverOption func(*observer)
)

type observer struct {
	logger        log.Logger
	loggingFields map[Field]struct{}
}

func New(opts ...ObserverOption) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o observer) Field(ctx context.Context, field Field) string {
	fields, _ := ctx.Value(fieldsContextKey).(map[Field]string)
	return fields[field]
}

func (o observer) WithField(ctx context.Context, field Field, value string) context.Context {
	current, _ := ctx.Value(fieldsContextKey).(map[Field]string)
	fields := make(map[Field]string, len(current)+1)
	for k, v := range current {
		fields[k] = v
	}
	fields[field] = value
	ctx = context.WithValue(ctx, fieldsContextKey, fields)

	if _, ok := o.loggingFields[field]; ok && o.logger != nil {
		ctx = o.logger.WithContext(ctx, log.Fields{string(field): value})
	}

	return ctx
}

// WithFieldsLogging adds the listed fields to the logger context once they are set.
func WithFieldsLogging(logger log.Logger, fields ...Field) ObserverOption {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[Field]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}
