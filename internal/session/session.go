// Package session holds per-visitor authentication state across
// requests.  A session is keyed by an opaque identifier carried in an
// HttpOnly cookie; the state itself lives server-side and is cleared
// on logout or expiry.  Handlers reach sessions through the Store
// interface so tests can substitute the in-memory implementation.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Session is the authentication state bound to one browser visit.
// Authenticated is only ever set together with Username and CustID on
// a successful login.
type Session struct {
	ID            string `json:"-"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	CustID        uint64 `json:"cust_id"`
}

// ErrNoSession is returned by Get when the identifier is unknown or
// the session has expired.
var ErrNoSession = errors.New("session: not found")

// Store persists sessions for their lifetime.
type Store interface {
	// Get loads the session with the given id, or ErrNoSession.
	Get(ctx context.Context, id string) (Session, error)
	// Save persists the session under its ID, resetting its lifetime.
	Save(ctx context.Context, s Session) error
	// Delete removes the session.  Deleting an unknown id is a no-op,
	// which keeps logout idempotent.
	Delete(ctx context.Context, id string) error
}

// NewID returns a fresh opaque session identifier.
func NewID() string { return uuid.NewString() }
