package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/hotsauce86/Stream-TV/internal/database"
	"github.com/hotsauce86/Stream-TV/internal/model"
)

// isDuplicateKey reports whether err is MySQL error 1062, a unique
// index collision.  errors.As reaches through the dispatcher's
// sanitized wrapper to the driver error.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

// CustomerRepo manages persistence for customer accounts.
type CustomerRepo struct {
	d *database.Dispatcher
}

// NewCustomerRepo constructs a CustomerRepo over the statement
// dispatcher.
func NewCustomerRepo(d *database.Dispatcher) *CustomerRepo {
	return &CustomerRepo{d: d}
}

// Create inserts a customer row and returns the store-generated
// cust_id.  Uniqueness is enforced by the unique index on username;
// a duplicate-key failure maps to ErrUsernameTaken so concurrent
// registrations of the same name cannot both succeed.  The caller
// supplies PasswordHash; this layer never sees the plaintext.
func (r *CustomerRepo) Create(ctx context.Context, c model.Customer) (uint64, error) {
	const q = `INSERT INTO customer (username, password_hash, fname, lname, email, credit_card)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.d.Run(ctx, database.KindExec, q,
		strings.TrimSpace(c.Username), c.PasswordHash, c.FirstName, c.LastName, c.Email, c.CreditCard)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return uint64(res.LastID), nil
}

// GetByUsername fetches the customer owning a username.  Zero matches
// return ErrNotFound.  More than one match would mean the uniqueness
// invariant is broken; that case also reports ErrNotFound so the
// login flow treats it as an authentication failure rather than a
// system error.
func (r *CustomerRepo) GetByUsername(ctx context.Context, username string) (model.Customer, error) {
	const q = `SELECT cust_id, username, password_hash, fname, lname, email, credit_card
	           FROM customer WHERE username = ?`
	res, err := r.d.Run(ctx, database.KindQuery, q, strings.TrimSpace(username))
	if err != nil {
		return model.Customer{}, err
	}
	defer res.Rows.Close()

	var out model.Customer
	matches := 0
	for res.Rows.Next() {
		matches++
		if matches > 1 {
			return model.Customer{}, ErrNotFound
		}
		if err := res.Rows.Scan(&out.CustID, &out.Username, &out.PasswordHash,
			&out.FirstName, &out.LastName, &out.Email, &out.CreditCard); err != nil {
			return model.Customer{}, err
		}
	}
	if err := res.Rows.Err(); err != nil {
		return model.Customer{}, err
	}
	if matches == 0 {
		return model.Customer{}, ErrNotFound
	}
	return out, nil
}
