package dropbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})

	assert.True(t, limiter.Allow())
	// Burst exhausted; the next request would exceed the rate.
	assert.False(t, limiter.Allow())
}

func TestRateLimiter_AllowDuringBackoff(t *testing.T) {
	limiter := NewRateLimiter(RouteAPI)
	require.True(t, limiter.Allow())

	limiter.RecordRateLimitError(2)
	assert.False(t, limiter.Allow())
}

func TestRateLimiter_WaitBlocksUntilBackoffPasses(t *testing.T) {
	// Generous bucket so only the backoff deadline can block.
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})
	limiter.RecordRateLimitError(1)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestRateLimiter_WaitCancelledDuringBackoff(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 10})
	limiter.RecordRateLimitError(30)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRateLimiter_DefaultBackoffWhenNoRetryAfter(t *testing.T) {
	limiter := NewRateLimiter(RouteContent)

	// A 429 without Retry-After still triggers the default backoff.
	limiter.RecordRateLimitError(0)
	assert.False(t, limiter.Allow())
}

func TestRateLimiter_UnknownRouteGetsFallback(t *testing.T) {
	limiter := NewRateLimiter(RouteType("webhook"))
	require.NotNil(t, limiter)
	assert.True(t, limiter.Allow())
}
