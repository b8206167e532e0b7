// Package redis provides Redis-backed adapters shared across instances.
// The rate store implements the same sliding-window decision semantics as
// the in-memory store, with atomicity guaranteed by a Lua script instead of
// a process-local mutex.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/medidea/medidea-api/internal/domain/ratelimit"
)

// rateCheckScript prunes expired members, counts the window, and records the
// request only when under quota. Running it as one script keeps the
// check-then-update sequence atomic across instances.
var rateCheckScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local max = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local count = redis.call('ZCARD', key)
if count < max then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  return {1, count}
end
return {0, count}
`)

// RateStore is a Redis sorted-set sliding-window rate store.
type RateStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRateStore creates a Redis-backed rate store with the default key prefix.
func NewRateStore(client redis.UniversalClient) *RateStore {
	return NewRateStoreWithPrefix(client, "ratelimit:")
}

// NewRateStoreWithPrefix creates a Redis rate store with a custom key prefix.
func NewRateStoreWithPrefix(client redis.UniversalClient, prefix string) *RateStore {
	return &RateStore{client: client, prefix: prefix, now: time.Now}
}

// Check evaluates the identifier's sliding window in Redis.
func (s *RateStore) Check(ctx context.Context, identifier string, p ratelimit.Policy) (ratelimit.Decision, error) {
	now := s.now()
	key := s.prefix + identifier
	// Member values must be unique per request; the score carries the time.
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())

	res, err := rateCheckScript.Run(ctx, s.client,
		[]string{key},
		now.UnixMilli(),
		p.Window.Milliseconds(),
		p.Max,
		member,
	).Int64Slice()
	if err != nil {
		return ratelimit.Decision{}, fmt.Errorf("rate check script: %w", err)
	}
	if len(res) != 2 {
		return ratelimit.Decision{}, fmt.Errorf("rate check script: unexpected reply length %d", len(res))
	}

	allowed := res[0] == 1
	count := int(res[1])
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

// Clear removes all tracked windows under the store's prefix. Test isolation
// only; it scans the keyspace and is not meant for request handling.
func (s *RateStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan rate keys: %w", err)
	}
	return nil
}
