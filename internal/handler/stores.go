package handler

import (
	"context"

	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/repository"
)

// UserStore is the persistence surface the user and auth handlers need.
// repository.UserRepo satisfies it; tests substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, nu repository.NewUser, cost int) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, username string, nu repository.NewUser, cost int) (*model.User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, title string) (*model.User, error)
	RemoveFavorite(ctx context.Context, username, title string) (*model.User, error)
}

// MovieStore is the read-only catalog surface, satisfied by
// repository.MovieRepo.
type MovieStore interface {
	List(ctx context.Context) ([]*model.Movie, error)
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
	GenreByName(ctx context.Context, name string) (*model.Genre, error)
	DirectorByName(ctx context.Context, name string) (*model.Director, error)
}
