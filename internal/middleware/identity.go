package middleware

// identity.go provides the client-key helper shared by the rate limiter.
// Authenticated requests are keyed by the account id that JWTAuth stored in
// the context; everything else falls back to the caller's IP address.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// clientKey returns a stable identifier for the requester: "u:<id>" when a
// verified identity is present, otherwise "ip:<addr>".
func clientKey(c echo.Context) string {
    if v, ok := c.Get("user_id").(uint64); ok && v != 0 {
        return "u:" + strconv.FormatUint(v, 10)
    }
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    return "ip:" + ip
}
