package middleware

import (
	"net/http"
	"time"

	"github.com/pixeldock/pixelctl/internal/xslog"
)

// responseWriter records what the handler wrote so the access log can report
// it.
type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += n
	return n, err
}

// Logging emits one access-log line per request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		xslog.FromContext(r.Context()).InfoContext(
			r.Context(),
			"http request",
			xslog.RequestMethod(r),
			xslog.RequestPath(r),
			xslog.HTTPStatus(wrapped.status),
			xslog.Bytes(wrapped.bytes),
			xslog.Duration(time.Since(start)),
		)
	})
}
