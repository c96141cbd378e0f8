package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/klwxsrx/tagabukid-property/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"method": r.Method,
					"route":  meta.RouteName,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"route":  meta.RouteName,
				"code":   fmt.Sprintf("%d", meta.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}
