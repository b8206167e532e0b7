// Package ports defines interfaces (hexagonal ports) for behavior the
// services and HTTP layer depend on. Implementations live in
// internal/adapters and internal/data.
package ports

import (
	"context"
	"io"

	"github.com/medidea/medidea-api/internal/domain/auth"
)

// TokenAuthority issues and verifies signed, time-bound identity tokens.
// It is the sole source of truth for "who is making this request and with
// what role".
type TokenAuthority interface {
	// Issue creates a signed token embedding the identity plus
	// issued-at/expiry timestamps computed from the configured lifetime.
	Issue(identity auth.Identity) (string, error)

	// Verify decodes a token and checks signature and expiry. The boolean is
	// false for malformed, tampered, or expired tokens; callers must treat
	// an absent claim as "unauthenticated", not as an error. Verify is
	// side-effect-free and idempotent.
	Verify(token string) (*auth.Claims, bool)
}

// BlobStore persists attachment bytes under opaque keys.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
