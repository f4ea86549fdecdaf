package middleware

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/course-catalog/internal/config"
)

// NewRateLimit returns a fixed-window limiter backed by Redis, applied to
// the auth endpoints to slow down brute-force login attempts.  Each client
// key gets cfg.Limit requests per cfg.Window; the counter lives in Redis so
// every instance of the API shares the same budget.  When Redis is absent
// or errors, the middleware admits the request — availability wins over
// throttling here.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ctx := c.Request().Context()
            window := time.Now().Unix() / int64(cfg.Window/time.Second)
            key := cfg.Prefix + ":" + clientKey(c) + ":" + c.Path() + ":" + strconv.FormatInt(window, 10)

            n, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                c.Logger().Warnf("ratelimit: redis error for key=%s: %v", key, err)
                return next(c)
            }
            if n == 1 {
                // First hit in this window owns setting the expiry.
                _ = rdb.Expire(ctx, key, cfg.Window).Err()
            }

            remaining := int64(cfg.Limit) - n
            if remaining < 0 {
                remaining = 0
            }
            c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
            c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

            if n > int64(cfg.Limit) {
                retry := int(cfg.Window / time.Second)
                c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
                return c.JSON(http.StatusTooManyRequests, echo.Map{
                    "message":     "too many requests",
                    "retry_after": retry,
                })
            }
            return next(c)
        }
    }
}
