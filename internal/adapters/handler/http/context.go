package http

import (
	"context"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// IdentityFromContext returns the identity bound by the authentication gate.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(domain.Identity)
	return identity, ok
}
