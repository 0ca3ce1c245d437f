// Package middleware provides the HTTP middleware chain for the
// activities API: request IDs, structured request logging, panic
// recovery, CORS, and Prometheus request metrics.
package middleware
