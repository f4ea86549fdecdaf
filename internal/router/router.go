package router // package router maps HTTP routes onto handlers and middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/handler"
	"github.com/iliyamo/course-catalog/internal/middleware"
)

// RegisterRoutes registers the routes that need no dependencies at all.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the auth endpoints.  Register and login are public but
// rate limited; /api/me sits behind the token gate so clients can probe
// whether a stored token is still accepted.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rdb *redis.Client) {
	g := e.Group("/api/auth")
	// The limiter only fronts credential endpoints: these are the ones worth
	// brute forcing.
	g.Use(middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb))
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	me := e.Group("/api")
	me.Use(middleware.JWTAuth(a.Cfg.JWTSecret))
	me.GET("/me", a.Me)
}

// RegisterCourses wires the catalog endpoints.  Reads are public and served
// through the response cache; every mutation requires a valid bearer token.
// The original API shape is kept: plural /courses for the collection,
// singular /course/:id for one entity.
func RegisterCourses(e *echo.Echo, h *handler.CourseHandler, jwtSecret string, rdb *redis.Client) {
	public := e.Group("/api")
	public.Use(middleware.NewResponseCache(config.LoadCacheConfig(), rdb))
	public.GET("/courses", h.List)
	public.GET("/course/:id", h.GetByID)

	protected := e.Group("/api")
	protected.Use(middleware.JWTAuth(jwtSecret))
	protected.POST("/courses", h.Create)
	protected.POST("/courses/bulk-upload", h.BulkUpload)
	protected.PUT("/course/:id", h.Update)
	protected.DELETE("/course/:id", h.Delete)
}
