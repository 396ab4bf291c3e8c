package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTokenBucketLimiter_BurstThenBlocksThenRefills(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucketLimiter(clk, Config{Rate: 1, Burst: 2})

	require.True(t, l.Allow("ip1"))
	require.True(t, l.Allow("ip1"))
	require.False(t, l.Allow("ip1"), "bucket empty")

	clk.Add(time.Second)
	require.True(t, l.Allow("ip1"), "one token refilled")
	require.False(t, l.Allow("ip1"))

	// refill is capped by burst
	clk.Add(10 * time.Second)
	require.True(t, l.Allow("ip1"))
	require.True(t, l.Allow("ip1"))
	require.False(t, l.Allow("ip1"))
}

func TestTokenBucketLimiter_IsPerKey(t *testing.T) {
	t.Parallel()

	l := NewTokenBucketLimiter(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 1})

	require.True(t, l.Allow("keyA"))
	require.False(t, l.Allow("keyA"))
	require.True(t, l.Allow("keyB"))
}

func TestTokenBucketLimiter_MaxBucketsRejectsNewClients(t *testing.T) {
	t.Parallel()

	l := NewTokenBucketLimiter(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 5, MaxBuckets: 2})

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("b"))
	require.False(t, l.Allow("c"))
	require.True(t, l.Allow("a"), "known clients keep their bucket")
	require.Equal(t, 2, l.Len())
}

func TestTokenBucketLimiter_TTLCleanupRemovesIdleBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucketLimiter(clk, Config{Rate: 10, Burst: 1, TTL: 2 * time.Second})

	l.Allow("A")
	l.Allow("B")
	require.Equal(t, 2, l.Len())

	clk.Add(59 * time.Second)
	l.Allow("B")

	clk.Add(2 * time.Second)
	l.Allow("B")

	_, hasA := l.buckets["A"]
	_, hasB := l.buckets["B"]
	require.False(t, hasA, "idle bucket swept")
	require.True(t, hasB)
}

func TestTokenBucketLimiter_ConcurrentAllow(t *testing.T) {
	t.Parallel()

	l := NewTokenBucketLimiter(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 50})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 50, allowed)
}
