package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/efriedrich/movie-api/internal/auth"
)

// RequireOwner returns a middleware that enforces resource ownership on
// user-scoped routes: the authenticated actor's current username must match
// the :username path parameter.  It assumes JWTAuth ran earlier in the
// chain.  A mismatch answers 400 with the plain body "Permission denied",
// which is the wire contract clients of this API already depend on.
func RequireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := auth.Authorize(CurrentUser(c), c.Param("username")); err != nil {
				return c.String(http.StatusBadRequest, "Permission denied")
			}
			return next(c)
		}
	}
}
