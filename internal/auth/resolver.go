package auth

import (
	"context"

	"github.com/axellelanca/linkbundles/internal/logger"
)

type handleKey struct{}

// Resolver yields the caller's handle, or "" when the caller is anonymous.
type Resolver interface {
	UserHandle(ctx context.Context) string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context) string

func (f ResolverFunc) UserHandle(ctx context.Context) string {
	return f(ctx)
}

// ContextResolver reads the handle stored by the authentication middleware.
type ContextResolver struct{}

func (ContextResolver) UserHandle(ctx context.Context) string {
	h, _ := ctx.Value(handleKey{}).(string)
	return h
}

// WithUserHandle stores a normalized handle in ctx.
func WithUserHandle(ctx context.Context, handle string) context.Context {
	handle = NormalizeHandle(handle)
	ctx = logger.ContextWithUser(ctx, handle)
	return context.WithValue(ctx, handleKey{}, handle)
}
