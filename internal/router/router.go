package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/efriedrich/movie-api/internal/auth"
	"github.com/efriedrich/movie-api/internal/config"
	"github.com/efriedrich/movie-api/internal/handler"
	"github.com/efriedrich/movie-api/internal/middleware"
)

// Register wires every route of the API onto the Echo instance.
//
// Three tiers of access:
//   - open: health check, registration, login
//   - authenticated: catalog reads, gated by JWTAuth only
//   - owner: user-scoped routes, gated by JWTAuth plus RequireOwner on the
//     :username path parameter
//
// rdb may be nil; the cache and rate-limit middleware then pass through.
func Register(e *echo.Echo, cfg config.Config, users auth.UserStore,
	a *handler.AuthHandler, u *handler.UserHandler, m *handler.MovieHandler, rdb *redis.Client) {

	e.GET("/healthz", handler.Health)
	e.POST("/users", u.Register)
	e.POST("/login", a.Login, middleware.LoginRateLimit(config.LoadRateLimitConfig(), rdb))

	jwtAuth := middleware.JWTAuth(cfg.JWTSecret, users)

	// Catalog reads: authenticated, cached.
	movies := e.Group("/movies", jwtAuth, middleware.CatalogCache(config.LoadCacheConfig(), rdb))
	movies.GET("", m.List)
	movies.GET("/:title", m.ByTitle)
	movies.GET("/genre/:genreName", m.Genre)
	movies.GET("/directors/:directorName", m.Director)

	// User-scoped routes: authenticated and owner-only.
	owner := e.Group("/users/:username", jwtAuth, middleware.RequireOwner())
	owner.GET("", u.Get)
	owner.PUT("", u.Update)
	owner.DELETE("", u.Delete)
	owner.GET("/favoriteMovies", u.ListFavorites)
	owner.POST("/favoriteMovies/:title", u.AddFavorite)
	owner.DELETE("/favoriteMovies/:title", u.RemoveFavorite)
}
