package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/01moynul/taptosell-storefront/internal/cache"
	"github.com/gin-gonic/gin"
)

// RateLimiter allows maxRequests per window, per client IP, method and route.
// Counter failures let the request through.
func RateLimiter(counter cache.Counter, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("rate limiter: %v", err)
			c.Next()
			return
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetIn := int(time.Until(resetAt).Seconds())
		if resetIn < 0 {
			resetIn = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetIn))

		if int(count) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(resetIn))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
