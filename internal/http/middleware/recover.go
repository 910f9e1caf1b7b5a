package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
)

// Recover creates middleware that converts handler panics into 500
// responses so no request can crash the process.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					httputil.Error(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
