package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())
			if meta.RouteName == getRouteName(http.MethodGet, healthPath) {
				return
			}

			loggerWithFields := getRequestFieldsLogger(r, logger).With(log.Fields{
				"routeName":    meta.RouteName,
				"responseCode": meta.Code,
				"duration":     time.Since(started).String(),
			})
			if meta.Error != nil {
				loggerWithFields = loggerWithFields.WithError(meta.Error)
			}

			switch {
			case meta.Panic != nil:
				loggerWithFields.With(log.Fields{
					"panicMessage": meta.Panic.Message,
					"stacktrace":   string(meta.Panic.Stacktrace),
				}).Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				loggerWithFields.Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				loggerWithFields.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	return logger.With(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"uri":    r.URL.RequestURI(),
	})
}
