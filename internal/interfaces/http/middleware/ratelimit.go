package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/infrastructure/ratelimit"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// RateLimit enforces limiter per client IP. When the limiter itself fails
// the request is let through.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		result, err := limiter.Allow(c.Request.Context(), "ip:"+clientIP)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", clientIP,
				"error", err)
			c.Next()
			return
		}

		if result.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		}

		if !result.Allowed {
			retry := int(math.Ceil(result.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
