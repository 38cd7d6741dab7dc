package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

const (
	defaultRateMax    = 50
	defaultRateWindow = time.Second
)

// RateLimit enforces a fixed-window per-IP rate limit backed by Redis.
// With no Redis client the limiter is a no-op.
func RateLimit(rdb *redis.Client) gin.HandlerFunc {
	return rateLimit(rdb, "global", defaultRateMax, defaultRateWindow)
}

// RateLimitStrict is a tighter limiter for abuse-prone endpoints such
// as the contact form.
func RateLimitStrict(rdb *redis.Client, max int, window time.Duration) gin.HandlerFunc {
	return rateLimit(rdb, "strict", max, window)
}

func rateLimit(rdb *redis.Client, bucket string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		windowKey := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("scts:rate_limit:%s:%s:%d", bucket, ip, windowKey)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// limiter failure never takes down the API
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, window+time.Second)
		}

		if count > int64(max) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())+1))
			response.TooManyRequests(c, "Too many requests, please slow down")
			return
		}

		c.Next()
	}
}
