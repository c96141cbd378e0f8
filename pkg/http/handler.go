package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/klwxsrx/tagabukid-property/pkg/auth"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) error

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetHTMLBody(body []byte) ResponseWriter
	Redirect(url string, httpCode int) ResponseWriter
}

type responseWriter struct {
	impl http.ResponseWriter

	body        []byte
	contentType string
	httpCode    *int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = &httpCode
	return w
}

func (w *responseWriter) SetHTMLBody(body []byte) ResponseWriter {
	w.body = body
	w.contentType = "text/html; charset=utf-8"
	return w
}

func (w *responseWriter) Redirect(url string, httpCode int) ResponseWriter {
	w.impl.Header().Set("Location", url)
	return w.SetStatusCode(httpCode)
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := http.StatusOK
	if w.httpCode != nil {
		httpCode = *w.httpCode
	}

	switch {
	case err == nil:
	case httpCode >= http.StatusBadRequest:
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthenticated):
		httpCode = http.StatusUnauthorized
	case errors.Is(err, auth.ErrPermissionDenied):
		httpCode = http.StatusForbidden
	default:
		httpCode = http.StatusInternalServerError
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if err != nil && w.body == nil {
		w.contentType = "text/plain; charset=utf-8"
		w.body = []byte(http.StatusText(httpCode))
	}
	if w.contentType != "" {
		w.impl.Header().Set("Content-Type", w.contentType)
	}

	w.impl.WriteHeader(httpCode)
	if len(w.body) > 0 {
		_, _ = w.impl.Write(w.body)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{impl: w}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
