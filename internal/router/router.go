package router // package router defines how HTTP routes are registered for the API

import (
    "net/http"

    "github.com/labstack/echo/v4"                       // Echo web framework
    echomw "github.com/labstack/echo/v4/middleware"     // Echo's bundled middleware (CORS, logger, recover)
    "github.com/redis/go-redis/v9"

    "github.com/minhvu/tech-store-backend/internal/config"
    "github.com/minhvu/tech-store-backend/internal/handler"
    "github.com/minhvu/tech-store-backend/internal/middleware"
)

// RegisterBase wires the middleware every route shares and the endpoints
// that need no dependencies: the health check used by load balancers and
// the HTML landing page.
func RegisterBase(e *echo.Echo) {
    e.Use(echomw.Recover())
    e.Use(echomw.Logger())
    e.Use(echomw.CORS())

    e.GET("/healthz", handler.Health)
    e.GET("/", func(c echo.Context) error {
        return c.HTML(http.StatusOK,
            `<h1>Tech Store API</h1><p>Browse: <a href="/api/products">/api/products</a></p>`)
    })
}

// RegisterCatalog registers the public product endpoints.  All catalog
// routes are read-only and unauthenticated.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler) {
    g := e.Group("/api/products")
    // Full catalog, ordered by id ascending.
    g.GET("", h.ListProducts)
    // Single product by numeric id; 404 when absent.
    g.GET("/:id", h.GetProduct)
    // Exact-match category filter; unknown categories yield an empty array.
    g.GET("/category/:category", h.ListByCategory)
}

// RegisterAuth registers the credential endpoints.  Register and login are
// open but rate limited; /api/auth/me requires a valid bearer token.  The
// rdb client may be nil, in which case the limiter passes requests through.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
    g := e.Group("/api/auth")
    g.Use(middleware.NewTokenBucket(rlCfg, rdb))
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)

    me := e.Group("/api/auth")
    me.Use(middleware.JWTAuth(a.Cfg.JWTSecret))
    me.GET("/me", a.Me)
}
