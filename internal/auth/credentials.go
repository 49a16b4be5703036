package auth

import (
	"context"

	"github.com/efriedrich/movie-api/internal/model"
	"github.com/efriedrich/movie-api/internal/utils"
)

// Verifier validates username/password pairs against the user store.  It is
// read-only: it never issues tokens and never writes to the store.
type Verifier struct {
	Users UserStore
}

func NewVerifier(users UserStore) *Verifier { return &Verifier{Users: users} }

// Verify looks up the user by username and checks the password against the
// stored bcrypt hash.  It returns ErrUnknownUsername when no such user
// exists, ErrWrongPassword on a hash mismatch, and the matching user on
// success.  Store failures are passed through untouched so the caller can
// surface them as server errors rather than login failures.
func (v *Verifier) Verify(ctx context.Context, username, password string) (*model.User, error) {
	u, err := v.Users.FindByUsername(ctx, username)
	if err != nil {
		if notFound(err) {
			return nil, ErrUnknownUsername
		}
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, ErrWrongPassword
	}
	return u, nil
}
