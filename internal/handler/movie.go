package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/efriedrich/movie-api/internal/repository"
)

// MovieHandler serves catalog reads.  All of its routes sit behind JWTAuth
// but not behind the ownership gate: any authenticated user may browse.
type MovieHandler struct {
	Movies MovieStore
}

func NewMovieHandler(movies MovieStore) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

// List returns every movie in the catalog.
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, movies)
}

// ByTitle returns a single movie by its exact title.
func (h *MovieHandler) ByTitle(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.FindByTitle(ctx, c.Param("title"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "no movie found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Genre returns the description of a genre by name.
func (h *MovieHandler) Genre(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Movies.GenreByName(ctx, c.Param("genreName"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "no genre found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, g)
}

// Director returns a director's bio by name.
func (h *MovieHandler) Director(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Movies.DirectorByName(ctx, c.Param("directorName"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.String(http.StatusBadRequest, "no director found")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, d)
}
