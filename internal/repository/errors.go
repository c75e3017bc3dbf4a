// Package repository defines error types that are reused across
// multiple repositories.  These sentinel values let handlers
// distinguish failure scenarios without inspecting driver errors:
// ErrNotFound marks an empty result at a lookup boundary, and is what
// handlers translate into the "not found" page state.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row.  Every
// single-entity lookup guards its empty result with this error; no
// caller ever dereferences a first row that may not exist.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned when a registration collides with an
// existing username.  Handlers surface it as a form message, not a
// system fault.
var ErrUsernameTaken = errors.New("username already exists")
