package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
)

// Recover turns a handler panic into a 500 logged with the request id.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.ErrorContext(r.Context(), "handler panic",
				"err", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()),
				"stack", string(debug.Stack()),
			)
			httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
