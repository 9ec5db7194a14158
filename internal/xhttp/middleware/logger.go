package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pixeldock/pixelctl/internal/xcontext"
	"github.com/pixeldock/pixelctl/internal/xslog"
)

// Logger attaches a request-scoped logger to the context, tagged with the
// request id when one is present. Must run after RequestID.
func Logger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			logger := base
			if id, ok := xcontext.GetRequestID(ctx); ok {
				logger = logger.With(xslog.RequestID(id))
			}

			next.ServeHTTP(w, r.WithContext(xslog.WithLogger(ctx, logger)))
		})
	}
}
