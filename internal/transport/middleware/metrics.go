package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(pattern, method string, status int, d time.Duration)
}

// Metrics returns middleware that reports request durations labelled by the
// matched ServeMux pattern. It must wrap the mux directly so the pattern set
// by the mux is visible on the same request.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			pattern := r.Pattern
			if pattern == "" {
				pattern = "unmatched"
			}
			obs.ObserveHTTP(pattern, r.Method, sw.status, time.Since(start))
		})
	}
}
