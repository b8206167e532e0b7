// Package ratelimit contains the domain contract for sliding-window rate
// limiting: a quota is evaluated over a continuously moving time interval
// ending "now", not over fixed-aligned buckets.
package ratelimit

import (
	"context"
	"time"
)

// Policy bounds request counts: at most Max requests within the trailing
// Window.
type Policy struct {
	Max    int
	Window time.Duration
}

// Decision is the outcome of a quota check.
//
// ResetAt is "window length from now", not the expiry of the oldest tracked
// request. It is back-off guidance for clients, not an exact reset time.
type Decision struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Store tracks request timestamps per identifier over a sliding window.
//
// Check prunes timestamps older than the window, admits the request when the
// pruned count is under Policy.Max, and records the current timestamp only
// when admitting. Rejected attempts are never recorded. Implementations must
// serialize concurrent checks for the same identifier; two concurrent
// callers must not both be admitted into the last remaining slot.
type Store interface {
	Check(ctx context.Context, identifier string, p Policy) (Decision, error)

	// Clear resets all tracked state. Intended for test isolation only.
	Clear(ctx context.Context) error
}
