package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidea/medidea-api/internal/domain/ratelimit"
)

func TestCheck_SlidingWindowSequence(t *testing.T) {
	current := time.Now()
	store := NewRateStoreWithClock(func() time.Time { return current })
	policy := ratelimit.Policy{Max: 3, Window: time.Second}
	ctx := context.Background()

	for _, wantRemaining := range []int{2, 1, 0} {
		decision, err := store.Check(ctx, "x", policy)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, wantRemaining, decision.Remaining)
		assert.Equal(t, current.Add(time.Second), decision.ResetAt)
	}

	decision, err := store.Check(ctx, "x", policy)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)

	// Past the window the identifier is admitted again.
	current = current.Add(time.Second + time.Millisecond)
	decision, err = store.Check(ctx, "x", policy)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 2, decision.Remaining)
}

func TestCheck_RejectedAttemptsNotRecorded(t *testing.T) {
	current := time.Now()
	store := NewRateStoreWithClock(func() time.Time { return current })
	policy := ratelimit.Policy{Max: 2, Window: time.Minute}
	ctx := context.Background()

	for range 2 {
		_, err := store.Check(ctx, "x", policy)
		require.NoError(t, err)
	}
	require.Equal(t, 2, store.Len("x"))

	for range 5 {
		decision, err := store.Check(ctx, "x", policy)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
	}
	assert.Equal(t, 2, store.Len("x"), "rejected attempts must not be recorded")
}

func TestCheck_IdentifiersAreIsolated(t *testing.T) {
	store := NewRateStore()
	policy := ratelimit.Policy{Max: 1, Window: time.Minute}
	ctx := context.Background()

	first, err := store.Check(ctx, "a", policy)
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := store.Check(ctx, "a", policy)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := store.Check(ctx, "b", policy)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestClear(t *testing.T) {
	store := NewRateStore()
	policy := ratelimit.Policy{Max: 1, Window: time.Minute}
	ctx := context.Background()

	_, err := store.Check(ctx, "x", policy)
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	decision, err := store.Check(ctx, "x", policy)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestCheck_ConcurrentCallersNeverOverAdmit(t *testing.T) {
	store := NewRateStore()
	policy := ratelimit.Policy{Max: 10, Window: time.Minute}
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := store.Check(ctx, "shared", policy)
			assert.NoError(t, err)
			if decision.Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, admitted)
}
