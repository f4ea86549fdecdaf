package handler // handler defines the HTTP handlers of the API

import (
    "errors"
    "strconv"

    "github.com/labstack/echo/v4"
)

// identity is what the auth middleware attached to the request: the account
// id and email from the verified token claims.  It lives only for the
// duration of one request.
type identity struct {
    UserID uint64
    Email  string
}

// requestIdentity reads the identity stored in the Echo context by the
// JWTAuth middleware.  An error here means a protected handler was reached
// without the middleware, which is a wiring bug rather than a client fault.
func requestIdentity(c echo.Context) (identity, error) {
    var id identity
    switch t := c.Get("user_id").(type) {
    case uint64:
        id.UserID = t
    case float64: // JWT numeric claims decode as float64 through MapClaims
        id.UserID = uint64(t)
    case string:
        n, err := strconv.ParseUint(t, 10, 64)
        if err != nil {
            return identity{}, errors.New("invalid user_id in context")
        }
        id.UserID = n
    default:
        return identity{}, errors.New("missing user_id in context")
    }
    if e, ok := c.Get("email").(string); ok {
        id.Email = e
    }
    return id, nil
}
