// Every SQL statement in the application flows through Dispatcher.Run.
// The caller states whether the statement reads or writes; the kind is
// never inferred from the statement text.  Parameters are always bound
// through the driver, never concatenated.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hotsauce86/Stream-TV/internal/logging"
)

// Kind classifies a statement as a read or a write.
type Kind int

const (
	// KindQuery is a row-returning statement; Result.Rows is set.
	KindQuery Kind = iota
	// KindExec is a mutation; Result.Affected is set.
	KindExec
)

// ErrUnknownKind is returned when a caller passes a Kind outside the
// declared constants.
var ErrUnknownKind = errors.New("database: unknown statement kind")

// StoreError wraps a driver-level failure.  Its message is generic on
// purpose: statement text goes to the log, never to the client.
type StoreError struct {
	op  string
	err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s failed", e.op) }

func (e *StoreError) Unwrap() error { return e.err }

// IsStoreError reports whether err originated in the store layer.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// Result carries the outcome of a dispatched statement.  Rows is set
// for KindQuery and must be closed by the caller; Affected and LastID
// are set for KindExec.
type Result struct {
	Rows     *sql.Rows
	Affected int64
	LastID   int64
}

// Dispatcher is the single execution chokepoint over the connection
// pool.
type Dispatcher struct {
	db *sql.DB
}

// NewDispatcher wraps an open connection pool.
func NewDispatcher(db *sql.DB) *Dispatcher { return &Dispatcher{db: db} }

// Run executes stmt with args bound as parameters.  The context bounds
// the statement's execution time; handlers pass request-scoped
// contexts with deadlines.
func (d *Dispatcher) Run(ctx context.Context, kind Kind, stmt string, args ...any) (Result, error) {
	switch kind {
	case KindQuery:
		rows, err := d.db.QueryContext(ctx, stmt, args...)
		if err != nil {
			return Result{}, d.fail("query", stmt, err)
		}
		return Result{Rows: rows}, nil
	case KindExec:
		res, err := d.db.ExecContext(ctx, stmt, args...)
		if err != nil {
			return Result{}, d.fail("exec", stmt, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return Result{}, d.fail("exec", stmt, err)
		}
		// MySQL always supports LastInsertId; zero for non-insert writes.
		id, _ := res.LastInsertId()
		return Result{Affected: n, LastID: id}, nil
	default:
		return Result{}, ErrUnknownKind
	}
}

// fail logs the failing statement and returns the sanitized wrapper.
func (d *Dispatcher) fail(op, stmt string, err error) error {
	logging.Error().Err(err).Str("op", op).Str("stmt", stmt).Msg("statement failed")
	return &StoreError{op: op, err: err}
}
