package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("ip:10.0.0.1", config)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("ip:10.0.0.1", config)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth attempt in the window must be rejected")
}

func TestRedisRateLimiter_AllowSeparateKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("ip:10.0.0.1", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("ip:10.0.0.2", config)
	require.NoError(t, err)
	assert.True(t, allowed, "limits are tracked per key")
}

func TestNoopRateLimiter_Allow(t *testing.T) {
	limiter := NewNoopRateLimiter()

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow("anything", RateLimitConfig{RequestsPerMinute: 1})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
