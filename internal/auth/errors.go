// Package auth implements credential verification, bearer token issuance
// and verification, and the ownership check applied to user-scoped routes.
// It deals in plain values (usernames, header strings, model.User) and never
// touches the HTTP layer directly, so every piece is testable in isolation.
package auth

import "errors"

// Login failures.  Both map to HTTP 400; only the message text differs,
// mirroring the observable behavior of the original API.
var (
	ErrUnknownUsername = errors.New("unknown username")
	ErrWrongPassword   = errors.New("wrong password")
)

// ErrUnauthenticated covers every way a bearer token can fail: missing
// header, wrong scheme, bad signature, expired, or a subject that no longer
// exists.  Callers must not learn which; the distinction only helps
// attackers probing tokens.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrPermissionDenied is returned when a valid actor targets a resource
// owned by someone else.
var ErrPermissionDenied = errors.New("permission denied")

// LoginMessage translates a login failure into the message text clients
// expect in the response body.
func LoginMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnknownUsername):
		return "Incorrect username"
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password."
	default:
		return "Something went wrong"
	}
}
