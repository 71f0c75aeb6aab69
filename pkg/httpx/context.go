package httpx

import (
	"context"

	"github.com/aussiebroadwan/sso/pkg/ssox"
)

type ctxKey string

const ctxKeyAuth ctxKey = "auth"

// AuthInfo is what ProtectedRoute learned about the caller.
type AuthInfo struct {
	// Token is the raw bearer token from the Authorization header.
	Token string
	User  *ssox.User
}

// WithAuth returns a copy of ctx carrying info.
func WithAuth(ctx context.Context, info AuthInfo) context.Context {
	return context.WithValue(ctx, ctxKeyAuth, info)
}

// AuthFromContext returns the AuthInfo stored by ProtectedRoute.
func AuthFromContext(ctx context.Context) (AuthInfo, bool) {
	info, ok := ctx.Value(ctxKeyAuth).(AuthInfo)
	return info, ok
}
