package repository

import (
	"context"
	"strings"

	"github.com/hotsauce86/Stream-TV/internal/database"
	"github.com/hotsauce86/Stream-TV/internal/model"
)

// SearchRepo runs the free-text catalog search.  Matching is a
// case-insensitive substring match; actors match on first or last
// name, shows on title.  The two result sets are independent and
// returned in match order, no ranking.
type SearchRepo struct {
	d *database.Dispatcher
}

// NewSearchRepo constructs a SearchRepo over the statement
// dispatcher.
func NewSearchRepo(d *database.Dispatcher) *SearchRepo {
	return &SearchRepo{d: d}
}

// likePattern builds the bound LIKE argument for a query term.  The
// term is lowercased here and the columns lowered in SQL, so matching
// is case-insensitive regardless of column collation.  LIKE
// wildcards in the term are taken literally by escaping them.
func likePattern(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	term = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + term + "%"
}

// Actors returns actors whose first or last name contains the term.
func (r *SearchRepo) Actors(ctx context.Context, term string) ([]model.Actor, error) {
	const q = `SELECT act_id, fname, lname FROM actor
	           WHERE LOWER(fname) LIKE ? OR LOWER(lname) LIKE ?
	           ORDER BY lname, fname`
	p := likePattern(term)
	res, err := r.d.Run(ctx, database.KindQuery, q, p, p)
	if err != nil {
		return nil, err
	}
	defer res.Rows.Close()

	out := make([]model.Actor, 0)
	for res.Rows.Next() {
		var a model.Actor
		if err := res.Rows.Scan(&a.ActID, &a.FirstName, &a.LastName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := res.Rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Shows returns shows whose title contains the term.
func (r *SearchRepo) Shows(ctx context.Context, term string) ([]model.Show, error) {
	const q = `SELECT show_id, title, network, premiere_year, creator, category
	           FROM shows WHERE LOWER(title) LIKE ?
	           ORDER BY title`
	res, err := r.d.Run(ctx, database.KindQuery, q, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer res.Rows.Close()

	out := make([]model.Show, 0)
	for res.Rows.Next() {
		var s model.Show
		if err := res.Rows.Scan(&s.ShowID, &s.Title, &s.Network, &s.PremiereYear, &s.Creator, &s.Category); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := res.Rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
