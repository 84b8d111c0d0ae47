package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// MetricsRecorder records per-request HTTP metrics
type MetricsRecorder interface {
	RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records method, route template, status and duration
func MetricsMiddleware(metrics MetricsRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			durationMs := float64(time.Since(start).Microseconds()) / 1000
			metrics.RecordHTTPRequest(r.Context(), r.Method, route, rec.status, durationMs)
		})
	}
}
