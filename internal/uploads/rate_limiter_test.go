package uploads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(duration time.Duration) {
	c.now = c.now.Add(duration)
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func TestRateLimiterRejectsAttemptBeyondQuota(t *testing.T) {
	clock := newManualClock()
	limiter := NewRateLimiter(3, time.Hour, clock.Now)

	for attempt := 1; attempt <= 3; attempt++ {
		decision := limiter.Allow("203.0.113.7")
		require.True(t, decision.Allowed, "attempt %d", attempt)
		assert.Equal(t, attempt, decision.Count)
	}

	clock.Advance(15 * time.Minute)
	decision := limiter.Allow("203.0.113.7")
	assert.False(t, decision.Allowed)
	assert.Equal(t, 4, decision.Count)
	assert.Equal(t, 45*time.Minute, decision.RetryAfter)

	other := limiter.Allow("198.51.100.2")
	assert.True(t, other.Allowed)
}

func TestRateLimiterCountsRejectedAttempts(t *testing.T) {
	clock := newManualClock()
	limiter := NewRateLimiter(1, time.Minute, clock.Now)

	require.True(t, limiter.Allow("client").Allowed)
	assert.Equal(t, 2, limiter.Allow("client").Count)
	assert.Equal(t, 3, limiter.Allow("client").Count)
}

func TestRateLimiterResetsAfterWindowElapses(t *testing.T) {
	clock := newManualClock()
	limiter := NewRateLimiter(2, time.Hour, clock.Now)

	require.True(t, limiter.Allow("client").Allowed)
	require.True(t, limiter.Allow("client").Allowed)
	require.False(t, limiter.Allow("client").Allowed)

	clock.Advance(time.Hour)
	assert.False(t, limiter.Allow("client").Allowed, "window boundary is inclusive")

	clock.Advance(time.Millisecond)
	decision := limiter.Allow("client")
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Count)
}

func TestRateLimiterSharesUnknownBucket(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour, newManualClock().Now)

	require.True(t, limiter.Allow("").Allowed)
	assert.False(t, limiter.Allow("   ").Allowed)
	assert.False(t, limiter.Allow(UnknownClientKey).Allowed)
}

func TestRateLimiterPruneDropsElapsedWindows(t *testing.T) {
	clock := newManualClock()
	limiter := NewRateLimiter(5, time.Hour, clock.Now)

	limiter.Allow("stale")
	clock.Advance(50 * time.Minute)
	limiter.Allow("fresh")
	clock.Advance(20 * time.Minute)

	assert.Equal(t, 1, limiter.Prune())
	assert.Equal(t, 1, limiter.Len())
}
