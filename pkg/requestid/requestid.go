package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the request identifier.
const Header = "X-Request-ID"

type contextKey struct{}

// New generates a fresh request identifier.
func New() string {
	return uuid.NewString()
}

// WithValue stores a caller supplied request ID on the context so that the
// outgoing request reuses it instead of generating one.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Value returns the request ID stored on ctx, if any.
func Value(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok {
		return v
	}
	return ""
}

// Ensure returns the request ID stored on ctx or a new one.
func Ensure(ctx context.Context) string {
	if id := Value(ctx); id != "" {
		return id
	}
	return New()
}
