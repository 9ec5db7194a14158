package middleware

import "net/http"

// Chain wraps h in the given middleware. The first middleware listed becomes
// the outermost wrapper, so requests pass through them in argument order.
func Chain(h http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
