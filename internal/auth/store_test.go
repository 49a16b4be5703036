package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/repository"
)

// fakeStore is an in-memory UserStore used across the auth tests.
type fakeStore struct {
	users []*model.User
	err   error // forced store failure when non-nil
}

func (s *fakeStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*model.User, error) {
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

func newTestUser(username, passwordHash string) *model.User {
	return &model.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        username + "@example.com",
	}
}

var errStoreDown = errors.New("store down")
