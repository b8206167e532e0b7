package service

import (
	"context"

	"github.com/medidea/medidea-api/internal/domain/ratelimit"
)

// RateLimiterOptions groups the store and the per-surface policies.
type RateLimiterOptions struct {
	Store  ratelimit.Store
	Login  ratelimit.Policy
	Upload ratelimit.Policy
	API    ratelimit.Policy
}

// RateLimiter applies named sliding-window policies to caller identifiers.
// Identifiers are namespaced per policy so a caller's login attempts and
// API requests are counted independently.
type RateLimiter struct {
	store  ratelimit.Store
	login  ratelimit.Policy
	upload ratelimit.Policy
	api    ratelimit.Policy
}

// NewRateLimiter constructs a RateLimiter.
func NewRateLimiter(opts RateLimiterOptions) *RateLimiter {
	return &RateLimiter{
		store:  opts.Store,
		login:  opts.Login,
		upload: opts.Upload,
		api:    opts.API,
	}
}

// CheckLogin applies the login policy to the given identifier.
func (l *RateLimiter) CheckLogin(ctx context.Context, identifier string) (ratelimit.Decision, error) {
	return l.store.Check(ctx, "login:"+identifier, l.login)
}

// CheckUpload applies the upload policy to the given identifier.
func (l *RateLimiter) CheckUpload(ctx context.Context, identifier string) (ratelimit.Decision, error) {
	return l.store.Check(ctx, "upload:"+identifier, l.upload)
}

// CheckAPI applies the general API policy to the given identifier.
func (l *RateLimiter) CheckAPI(ctx context.Context, identifier string) (ratelimit.Decision, error) {
	return l.store.Check(ctx, "api:"+identifier, l.api)
}
