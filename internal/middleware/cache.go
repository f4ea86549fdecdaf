package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "fmt"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/course-catalog/internal/config"
)

// bodyRecorder forwards writes to the client while keeping a bounded copy of
// the response body so a successful reply can be stored in the cache.
type bodyRecorder struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    limit  int
}

func (br *bodyRecorder) WriteHeader(code int) {
    br.status = code
    br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
    if br.limit <= 0 || br.buf.Len()+len(b) <= br.limit {
        br.buf.Write(b)
    } else {
        // Over the limit: drop the copy so a truncated body is never cached.
        br.buf.Reset()
        br.limit = -1
    }
    return br.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the route and raw query, hashed
// so arbitrary client input never becomes part of the key verbatim.
func cacheKey(prefix string, c echo.Context) string {
    tail := c.Request().Method + ":" + c.Path() + "?" + c.Request().URL.RawQuery
    sum := sha1.Sum([]byte(tail))
    return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache returns a middleware that serves public catalog reads
// from Redis.  Only configured methods (GET by default) participate, and
// only 200 responses are stored.  Hits are marked with an X-Cache header so
// curl output makes the behavior visible during development.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKey(cfg.Prefix, c)

            if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
                c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
                c.Response().Header().Set("X-Cache", "HIT")
                c.Response().WriteHeader(http.StatusOK)
                _, _ = c.Response().Write(body)
                return nil
            }

            br := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = br
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if br.status == http.StatusOK && br.buf.Len() > 0 {
                // Detached context: the write should survive the request
                // being finished.
                _ = rdb.SetEx(context.Background(), key, br.buf.Bytes(), cfg.TTL).Err()
            }
            return nil
        }
    }
}
