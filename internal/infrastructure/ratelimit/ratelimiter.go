// Package ratelimit throttles the public code-validation and customer
// login endpoints, which accept guessable short codes.
package ratelimit

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	// Allow records an attempt under key and reports whether it is within
	// the configured limits.
	Allow(key string, config RateLimitConfig) (bool, error)
}

// NoopRateLimiter admits everything. Used when Redis is disabled.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	return true, nil
}
