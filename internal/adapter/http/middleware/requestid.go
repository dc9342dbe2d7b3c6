package middleware

import (
	"net/http"

	"github.com/google/uuid"

	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
)

const RequestIDHeader = "X-Request-ID"

// RequestID puts the caller's X-Request-ID, or a fresh one, into the log context
// and echoes it in the response.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(wrap.WithRequestID(r.Context(), id)))
	})
}
