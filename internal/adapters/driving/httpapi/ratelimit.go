package httpapi

import (
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds the request rate limit for the API.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is used when no limit is configured.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20, BurstSize: 40}

// RateLimiter is a token bucket shared by every API request.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter. Non-positive values fall back to
// DefaultRateLimit.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimit.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = max(1, int(cfg.RequestsPerSecond*2))
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Allow reports whether a request may proceed now.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// RetryAfter returns the whole seconds until the bucket refills one token,
// at least 1.
func (r *RateLimiter) RetryAfter() int {
	wait := time.Duration(float64(time.Second) / float64(r.limiter.Limit()))
	secs := int((wait + time.Second - 1) / time.Second)
	return max(1, secs)
}
