package middleware // middleware provides shared request processing for handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/efriedrich/movie-api/internal/auth"
	"github.com/efriedrich/movie-api/internal/model"
)

// identityKey is the context key under which the resolved actor is stored.
const identityKey = "identity"

// JWTAuth returns an Echo middleware that validates the Bearer token on each
// request and resolves it to the live user via the store.  The resolved user
// is placed in the context for handlers and the ownership gate; any token
// failure yields a uniform 401 with no hint of which check failed.  Store
// failures are the only path to a 500 here.
func JWTAuth(secret string, users auth.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			u, err := auth.VerifyHeader(c.Request().Context(), secret, users, header)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
			}
			c.Set(identityKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the actor resolved by JWTAuth, or nil when the route
// is not behind it.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(identityKey).(*model.User)
	return u
}
