// Package xcontext carries request-scoped values through context.
package xcontext

import "context"

type requestIDKey struct{}

// SetRequestID stores the request id for downstream handlers and loggers.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID returns the request id set by the request-id middleware, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
