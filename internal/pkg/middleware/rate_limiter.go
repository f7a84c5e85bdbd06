package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis  *database.RedisClient
	Scope  string        // groups routes sharing a budget, e.g. "login"
	Limit  int           // Maximum number of requests
	Period time.Duration // Time period for the limit
}

// RateLimiterMiddleware counts requests per client IP (or user id when
// authenticated) in fixed windows stored in Redis. Redis failures let the
// request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := GetUserID(c); ok {
				identifier = userID.String()
			}
			key := fmt.Sprintf(constants.KeyRateLimit, config.Scope, identifier)

			count, err := config.Redis.IncrWithTTL(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > config.Limit {
				ttl, err := config.Redis.Client.TTL(c.Request().Context(), key).Result()
				if err != nil || ttl < 0 {
					ttl = config.Period
				}
				h.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
