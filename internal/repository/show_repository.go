package repository

// show_repository.go holds data access for the show catalog: show
// detail, cast lookups and episode listings.  The catalog is
// read-only; the rows are seeded out of band.

import (
	"context"
	"fmt"

	"github.com/hotsauce86/Stream-TV/internal/database"
	"github.com/hotsauce86/Stream-TV/internal/model"
)

// ShowRepo manages catalog reads for shows and episodes.
type ShowRepo struct {
	d *database.Dispatcher
}

// NewShowRepo constructs a ShowRepo over the statement dispatcher.
func NewShowRepo(d *database.Dispatcher) *ShowRepo {
	return &ShowRepo{d: d}
}

// GetShow retrieves a show by its id, or ErrNotFound.
func (r *ShowRepo) GetShow(ctx context.Context, showID uint64) (model.Show, error) {
	const q = `SELECT show_id, title, network, premiere_year, creator, category
	           FROM shows WHERE show_id = ?`
	res, err := r.d.Run(ctx, database.KindQuery, q, showID)
	if err != nil {
		return model.Show{}, err
	}
	defer res.Rows.Close()

	if !res.Rows.Next() {
		if err := res.Rows.Err(); err != nil {
			return model.Show{}, err
		}
		return model.Show{}, ErrNotFound
	}
	var s model.Show
	if err := res.Rows.Scan(&s.ShowID, &s.Title, &s.Network, &s.PremiereYear, &s.Creator, &s.Category); err != nil {
		return model.Show{}, err
	}
	return s, nil
}

// castTable maps the role selector to its assignment table.  The two
// tables share a layout, so a single lookup serves both billings.
func castTable(role model.CastRole) (string, error) {
	switch role {
	case model.CastMain:
		return "main_cast", nil
	case model.CastRecurring:
		return "recurring_cast", nil
	default:
		return "", fmt.Errorf("unknown cast role %q", role)
	}
}

// Cast returns the actors assigned to a show under the given billing.
// The table name comes from the castTable whitelist, never from
// request input; showID is the only bound parameter.
func (r *ShowRepo) Cast(ctx context.Context, showID uint64, role model.CastRole) ([]model.CastMember, error) {
	table, err := castTable(role)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT a.act_id, a.fname, a.lname, c.role
	                  FROM actor a
	                  JOIN %s c ON c.act_id = a.act_id
	                  WHERE c.show_id = ?
	                  ORDER BY a.lname, a.fname`, table)
	res, err := r.d.Run(ctx, database.KindQuery, q, showID)
	if err != nil {
		return nil, err
	}
	defer res.Rows.Close()

	out := make([]model.CastMember, 0)
	for res.Rows.Next() {
		m := model.CastMember{Billing: role}
		if err := res.Rows.Scan(&m.ActID, &m.FirstName, &m.LastName, &m.Role); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := res.Rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEpisodes returns a show's episodes in ascending episode_id
// order, the total order the listing page relies on.  An existing
// show with no episodes yields an empty slice, not an error.
func (r *ShowRepo) ListEpisodes(ctx context.Context, showID uint64) ([]model.Episode, error) {
	const q = `SELECT episode_id, show_id, title, airdate
	           FROM episode WHERE show_id = ?
	           ORDER BY episode_id ASC`
	res, err := r.d.Run(ctx, database.KindQuery, q, showID)
	if err != nil {
		return nil, err
	}
	defer res.Rows.Close()

	out := make([]model.Episode, 0)
	for res.Rows.Next() {
		var e model.Episode
		if err := res.Rows.Scan(&e.EpisodeID, &e.ShowID, &e.Title, &e.AirDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := res.Rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEpisode retrieves one episode by its id, or ErrNotFound.
func (r *ShowRepo) GetEpisode(ctx context.Context, episodeID uint64) (model.Episode, error) {
	const q = `SELECT episode_id, show_id, title, airdate
	           FROM episode WHERE episode_id = ?`
	res, err := r.d.Run(ctx, database.KindQuery, q, episodeID)
	if err != nil {
		return model.Episode{}, err
	}
	defer res.Rows.Close()

	if !res.Rows.Next() {
		if err := res.Rows.Err(); err != nil {
			return model.Episode{}, err
		}
		return model.Episode{}, ErrNotFound
	}
	var e model.Episode
	if err := res.Rows.Scan(&e.EpisodeID, &e.ShowID, &e.Title, &e.AirDate); err != nil {
		return model.Episode{}, err
	}
	return e, nil
}
