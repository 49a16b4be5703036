package auth

import (
	"context"
	"errors"

	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/repository"
)

// UserStore is the credential-store boundary this package depends on.  The
// Mongo-backed repository.UserRepo satisfies it in production; tests supply
// in-memory fakes.  Implementations report an absent user with
// repository.ErrNotFound and reserve other errors for store failures.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// notFound reports whether err means "no such user" as opposed to a store
// failure.
func notFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
