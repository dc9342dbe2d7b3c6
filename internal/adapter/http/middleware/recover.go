package middleware

import (
	"fmt"
	"net/http"

	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
)

// Recover turns a handler panic into a 500. When the handler already sent its
// status the connection is only closed. http.ErrAbortHandler passes through.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("panic: %v", rec)
			m.log.Error(wrap.WithAction(r.Context(), "panic_recovered"), "recovered from panic", err,
				"method", r.Method,
				"path", r.URL.Path,
			)

			if rw.wroteHeader {
				return
			}
			rw.Header().Set("Connection", "close")
			errorResponse(rw, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
		}()

		next.ServeHTTP(rw, r)
	})
}
