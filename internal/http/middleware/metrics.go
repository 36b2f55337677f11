package middleware

import (
	"net/http"

	"github.com/devnunnez/Dev/internal/metrics"
)

// Metrics tracks in-flight requests.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.ActiveRequests.Inc()
			defer metrics.ActiveRequests.Dec()

			next.ServeHTTP(w, r)
		})
	}
}
