package middleware

import (
	"net/http"
	"time"
)

// Logging logs every request on arrival and on completion. Server errors are
// logged at WARN so they show up outside debug mode.
func (a *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		a.log.Debug(r.Context(), "request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		next.ServeHTTP(rw, r)

		logFn := a.log.Debug
		if rw.statusCode >= http.StatusInternalServerError {
			logFn = a.log.Warn
		}
		logFn(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"route", routeLabel(r),
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
