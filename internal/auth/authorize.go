package auth

import "github.com/efriedrich/movie-api/internal/model"

// Authorize decides whether actor may operate on the user resource addressed
// by targetUsername.  The rule is plain ownership: the actor's current
// username must equal the one in the path.  A token issued before a rename
// therefore stops matching the old path as soon as the store reflects the
// new name.
func Authorize(actor *model.User, targetUsername string) error {
	if actor == nil || actor.Username != targetUsername {
		return ErrPermissionDenied
	}
	return nil
}
