// Package memory provides the in-process rate limiter store. Windows live in
// process memory only: counters are not shared across instances, so a
// horizontally scaled deployment must use the Redis store instead.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/medidea/medidea-api/internal/domain/ratelimit"
)

// RateStore keeps per-identifier request timestamps guarded by one coarse
// mutex. The check-then-append sequence runs as a single atomic unit so two
// concurrent requests cannot both take the last remaining slot.
type RateStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

// NewRateStore creates an empty in-memory rate store.
func NewRateStore() *RateStore {
	return &RateStore{windows: make(map[string][]time.Time), now: time.Now}
}

// NewRateStoreWithClock creates a rate store with a custom time source for tests.
func NewRateStoreWithClock(now func() time.Time) *RateStore {
	return &RateStore{windows: make(map[string][]time.Time), now: now}
}

// Check prunes the identifier's window, admits the request when under quota,
// and records the timestamp only when admitting.
func (s *RateStore) Check(_ context.Context, identifier string, p ratelimit.Policy) (ratelimit.Decision, error) {
	now := s.now()
	windowStart := now.Add(-p.Window)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.windows[identifier][:0:len(s.windows[identifier])]
	for _, ts := range s.windows[identifier] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}

	count := len(kept)
	allowed := count < p.Max
	if allowed {
		kept = append(kept, now)
	}
	if len(kept) == 0 {
		delete(s.windows, identifier)
	} else {
		s.windows[identifier] = kept
	}

	remaining := p.Max - count - 1
	if remaining < 0 {
		remaining = 0
	}
	return ratelimit.Decision{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   now.Add(p.Window),
	}, nil
}

// Clear drops all tracked windows.
func (s *RateStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = make(map[string][]time.Time)
	return nil
}

// Len reports the number of timestamps currently tracked for an identifier.
// Exposed for tests.
func (s *RateStore) Len(identifier string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows[identifier])
}
