// Package jwtauth implements the token authority with HMAC-SHA256 signed
// JWTs. Tokens are self-contained: claims are reconstructed from the token
// on every verification and nothing is stored server-side, so expiry is the
// only invalidation mechanism.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medidea/medidea-api/internal/domain/auth"
)

// ErrEmptySecret is returned when constructing an authority without a
// signing secret.
var ErrEmptySecret = errors.New("jwtauth: signing secret is empty")

// Config groups parameters for NewAuthority.
type Config struct {
	// Secret is the shared HMAC signing secret. Must not be empty.
	Secret string
	// Lifetime is how long issued tokens stay valid. Defaults to 24h.
	Lifetime time.Duration
	// Now overrides the time source. Defaults to time.Now; tests use this
	// to exercise expiry without sleeping.
	Now func() time.Time
}

// Authority issues and verifies signed identity tokens.
type Authority struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewAuthority constructs an Authority. Fails when the secret is empty so a
// missing production secret is a startup error, not a silently unsigned
// token.
func NewAuthority(cfg Config) (*Authority, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Authority{secret: []byte(cfg.Secret), lifetime: lifetime, now: now}, nil
}

// tokenClaims is the wire shape of the token payload.
type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the identity with issued-at/expiry
// stamped from the configured lifetime.
func (a *Authority) Issue(identity auth.Identity) (string, error) {
	if !identity.Role.Valid() {
		return "", fmt.Errorf("jwtauth: invalid role %q", identity.Role)
	}
	now := a.now()
	claims := tokenClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.lifetime)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("jwtauth: sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes and validates a token. All failure modes (malformed token,
// wrong signature, expired) collapse to a false second return so callers
// handle "no identity" as ordinary control flow rather than an exception.
func (a *Authority) Verify(token string) (*auth.Claims, bool) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&tokenClaims{},
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, false
	}
	role, ok := auth.ParseRole(tc.Role)
	if !ok {
		return nil, false
	}
	claims := &auth.Claims{
		UserID:    tc.UserID,
		Email:     tc.Email,
		Role:      role,
		ExpiresAt: tc.ExpiresAt.Time,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	return claims, true
}
