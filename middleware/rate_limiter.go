package middleware

import (
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/Modeva-Ecommerce/sepia-storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter is a fixed-window limiter backed by Redis. Without a client
// it lets every request through.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := utils.GetClientIP(c)
		endpoint := c.FullPath() // /api/products, /api/products/details/:id, etc.
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		// Increment request count
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Storefront traffic is not blocked when Redis is unreachable
			config.Logger.Warn("⚠️ rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := client.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				config.Logger.Warn("⚠️ rate limiter window not set", zap.Error(err))
			}
		}

		// Get stable resetAt from Redis
		resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := max(maxRequests-int(count), 0)
		resetInSeconds := max(int(time.Until(resetAt).Seconds()), 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set(models.RateLimiterKey, rate)

		// If limit exceeded → block request
		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
