package handler

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/efriedrich/movie-api/internal/config"
	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/repository"
	"github.com/efriedrich/movie-api/internal/utils"
)

// testConfig returns a config with a low bcrypt cost so the suite stays
// fast.
func testConfig() config.Config {
	return config.Config{
		Env:          "test",
		JWTSecret:    "test-secret",
		TokenTTLDays: 7,
		BcryptCost:   4,
	}
}

func newUserReq(username string) repository.NewUser {
	return repository.NewUser{Username: username, Password: "pw", Email: username + "@example.com"}
}

// fakeUserStore is an in-memory UserStore (and auth.UserStore).
type fakeUserStore struct {
	users []*model.User
	err   error
}

func (s *fakeUserStore) find(username string) *model.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *fakeUserStore) Create(_ context.Context, nu repository.NewUser, cost int) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.find(nu.Username) != nil {
		return nil, repository.ErrUsernameExists
	}
	hash, err := utils.HashPassword(nu.Password, cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:             primitive.NewObjectID(),
		Username:       strings.TrimSpace(nu.Username),
		PasswordHash:   hash,
		Email:          nu.Email,
		Birthday:       nu.Birthday,
		FavoriteMovies: []string{},
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u := s.find(username); u != nil {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) Update(_ context.Context, username string, nu repository.NewUser, cost int) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u := s.find(username)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	if v := strings.TrimSpace(nu.Username); v != "" && v != username {
		if s.find(v) != nil {
			return nil, repository.ErrUsernameExists
		}
		u.Username = v
	}
	if nu.Password != "" {
		hash, err := utils.HashPassword(nu.Password, cost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if nu.Email != "" {
		u.Email = nu.Email
	}
	if nu.Birthday != "" {
		u.Birthday = nu.Birthday
	}
	return u, nil
}

func (s *fakeUserStore) Delete(_ context.Context, username string) error {
	if s.err != nil {
		return s.err
	}
	for i, u := range s.users {
		if u.Username == username {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeUserStore) AddFavorite(_ context.Context, username, title string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u := s.find(username)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	for _, t := range u.FavoriteMovies {
		if t == title {
			return u, nil
		}
	}
	u.FavoriteMovies = append(u.FavoriteMovies, title)
	return u, nil
}

func (s *fakeUserStore) RemoveFavorite(_ context.Context, username, title string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u := s.find(username)
	if u == nil {
		return nil, repository.ErrNotFound
	}
	kept := u.FavoriteMovies[:0]
	for _, t := range u.FavoriteMovies {
		if t != title {
			kept = append(kept, t)
		}
	}
	u.FavoriteMovies = kept
	return u, nil
}

// fakeMovieStore is an in-memory MovieStore.
type fakeMovieStore struct {
	movies []*model.Movie
	err    error
}

func (s *fakeMovieStore) List(context.Context) ([]*model.Movie, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.movies, nil
}

func (s *fakeMovieStore) FindByTitle(_ context.Context, title string) (*model.Movie, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, m := range s.movies {
		if m.Title == title {
			return m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeMovieStore) GenreByName(_ context.Context, name string) (*model.Genre, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, m := range s.movies {
		if m.Genre.Name == name {
			return &m.Genre, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeMovieStore) DirectorByName(_ context.Context, name string) (*model.Director, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, m := range s.movies {
		if m.Director.Name == name {
			return &m.Director, nil
		}
	}
	return nil, repository.ErrNotFound
}
