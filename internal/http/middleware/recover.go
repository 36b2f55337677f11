package middleware

import (
	"net/http"

	"github.com/devnunnez/Dev/internal/observability"
)

const internalErrorBody = `{"error":"Internal server error"}` + "\n"

// Recover converts a panic in a handler into the generic 500 payload.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				//nolint:errorlint // http.ErrAbortHandler is a sentinel panic value
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				observability.FromContext(r.Context()).Error("handler panicked",
					observability.Any("panic", rec),
					observability.String("path", r.URL.Path))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(internalErrorBody))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
