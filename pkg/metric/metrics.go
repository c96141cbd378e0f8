package metric

import "time"

type (
	Labels map[string]string

	Metrics interface {
		With(Labels) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}
)

type metricsStub struct{}

// NewStub returns Metrics discarding everything, used until a metrics backend is wired.
func NewStub() Metrics {
	return metricsStub{}
}

func (s metricsStub) With(Labels) Metrics {
	return s
}

func (s metricsStub) Increment(string) {}

func (s metricsStub) Duration(string, time.Duration) {}
