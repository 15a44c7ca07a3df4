// Package utils provides general-purpose helper utilities
// used across different parts of the application: request identifiers
// carried in the context and the preconfigured HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which the outbound request identifier is
// stored. The same value is sent as the X-Request-ID header.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// ok is false when the value is missing, empty or of an unexpected type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// EnsureRequestID returns ctx unchanged when it already carries a request id,
// otherwise a copy with a freshly generated one. The effective id is
// returned as well.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := NewRequestID()
	return WithRequestID(ctx, id), id
}
