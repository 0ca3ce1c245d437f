package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mergington/activities-api/internal/metrics"
)

// Metrics records a request counter and duration histogram per request.
// The path label uses the raw URL path; the route surface is small and
// fixed, so label cardinality stays bounded in practice.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method, r.URL.Path, strconv.Itoa(wrapped.statusCode),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			r.Method, r.URL.Path,
		).Observe(time.Since(start).Seconds())
	})
}
