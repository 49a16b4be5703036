package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/efriedrich/movie-api/internal/config"
	"github.com/efriedrich/movie-api/internal/middleware"
	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/queue"
	"github.com/efriedrich/movie-api/internal/repository"
	publisher "github.com/efriedrich/movie-api/internal/service"
)

// UserHandler bundles dependencies for account and favorites endpoints.
// Routes that address a specific user run behind JWTAuth plus RequireOwner,
// so by the time a handler executes, the actor is the resource owner.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewUserHandler(cfg config.Config, users UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// Register creates an account.  This and login are the only routes open to
// unauthenticated clients.
func (h *UserHandler) Register(c echo.Context) error {
	var req repository.NewUser
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	h.publish(queue.ActionRegistered, u)
	return c.JSON(http.StatusCreated, u)
}

// Get returns the owner's profile.
func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "No user with this username found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Update modifies the owner's profile.  Blank fields are left untouched; a
// new password is rehashed inside the repository.
func (h *UserHandler) Update(c echo.Context) error {
	var req repository.NewUser
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Update(ctx, c.Param("username"), req, h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.String(http.StatusBadRequest, "No user with this username found")
		case errors.Is(err, repository.ErrUsernameExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update user failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete deregisters the owner's account.
func (h *UserHandler) Delete(c echo.Context) error {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "No user with this username found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete user failed"})
	}

	// RequireOwner guarantees the actor is the deleted account.
	h.publish(queue.ActionDeregistered, middleware.CurrentUser(c))
	return c.String(http.StatusOK, fmt.Sprintf("User %s has been successfully deregistered", username))
}

// ListFavorites returns the owner's favorite movie titles.
func (h *UserHandler) ListFavorites(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "No user with this username found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u.FavoriteMovies)
}

// AddFavorite puts a movie title on the owner's favorites list and returns
// the updated user.
func (h *UserHandler) AddFavorite(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.AddFavorite(ctx, c.Param("username"), c.Param("title"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "No user with this username found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update favorites failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// RemoveFavorite takes a movie title off the owner's favorites list and
// returns the updated user.
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.RemoveFavorite(ctx, c.Param("username"), c.Param("title"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "No user with this username found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update favorites failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// publish emits an account lifecycle event from its own goroutine so the
// request never waits on the broker.  It gets a fresh context because the
// request context is canceled as soon as the response is written; broker
// failures are logged by the publisher and otherwise ignored.
func (h *UserHandler) publish(action string, u *model.User) {
	if u == nil {
		return
	}
	ev := queue.AccountEvent{
		Action:     action,
		UserID:     u.ID.Hex(),
		Username:   u.Username,
		Email:      u.Email,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = publisher.PublishAccountEvent(ctx, ev)
	}()
}
