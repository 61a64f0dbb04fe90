package auth

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the session claims.
func NewContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// FromContext returns the session claims set by the auth middleware, or nil
// for an anonymous request.
func FromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ctxKey{}).(*Claims)
	return claims
}
