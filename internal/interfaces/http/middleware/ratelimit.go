package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// CodeAttemptLimit throttles the public code validation and customer
// login endpoints per client IP. Limit failures fall open so a Redis
// outage does not lock customers out.
func CodeAttemptLimit(limiter ratelimit.RateLimiter, attemptsPerMinute int, log logger.Interface) gin.HandlerFunc {
	config := ratelimit.RateLimitConfig{
		RequestsPerMinute: attemptsPerMinute,
		RequestsPerHour:   attemptsPerMinute * 20,
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("code-attempt:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limit check failed", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
