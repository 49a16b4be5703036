// Package repository provides MongoDB-backed persistence for users and the
// movie catalog.  Sentinel errors let higher layers distinguish "the document
// is not there" from "the store is unhealthy" without inspecting driver
// error types.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document.  Handlers and
// the auth layer translate it into the appropriate HTTP failure; it never
// signals a store fault.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when registration or a profile update would
// violate the unique username index.
var ErrUsernameExists = errors.New("username already exists")
