package middleware

import (
	"net/http"

	"github.com/halcyonworks/siteapi/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the global flood guard
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware is a process-wide token-bucket guard against request
// floods. It is not the per-client contact policy; that lives in
// internal/ratelimit and is consulted by the contact handler itself.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, common.RateLimitErrorResponse{
				Error:      common.ErrTooManyRequests,
				Message:    "The service is receiving too many requests. Please try again shortly.",
				RetryAfter: 1,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
