package dropbox

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RouteType identifies a Dropbox endpoint class for rate limiting purposes.
// RPC routes (listing, account) and content routes (download, export) have
// separate quotas.
type RouteType string

const (
	// RouteAPI covers RPC-style routes on api.dropboxapi.com.
	RouteAPI RouteType = "api"
	// RouteContent covers download/export routes on content.dropboxapi.com.
	RouteContent RouteType = "content"
)

// RateLimitConfig holds rate limiting configuration for a route class.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults per route class. Dropbox
// does not publish hard numbers; these stay well below observed throttling.
var DefaultRateLimits = map[RouteType]RateLimitConfig{
	RouteAPI:     {RequestsPerSecond: 4.0, BurstSize: 8},
	RouteContent: {RequestsPerSecond: 2.0, BurstSize: 4},
}

// RateLimiter provides rate limiting for Dropbox API requests.
// It uses a token bucket algorithm with optional backoff for 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	route   RouteType
}

// NewRateLimiter creates a new rate limiter for the specified route class.
func NewRateLimiter(route RouteType) *RateLimiter {
	cfg, ok := DefaultRateLimits[route]
	if !ok {
		cfg = RateLimitConfig{RequestsPerSecond: 2.0, BurstSize: 4}
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		route:   route,
	}
}

// NewRateLimiterWithConfig creates a rate limiter with custom configuration.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a rate limit error and sets a backoff period.
// Call this when receiving a 429 response from the Dropbox API.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		// Dropbox usually sends Retry-After; default when absent
		retryAfterSeconds = 30
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}

	return r.limiter.Allow()
}
