// Package handler exposes the HTTP handlers behind every route.  Each
// handler struct bundles the stores it needs behind small interfaces,
// so tests substitute in-memory fakes for the SQL repositories and
// the Redis session store.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/middleware"
	"github.com/hotsauce86/Stream-TV/internal/model"
)

// dbTimeout bounds every data access call made on behalf of one
// request.
const dbTimeout = 5 * time.Second

// CustomerStore is the slice of the customer repository the auth
// handlers need.
type CustomerStore interface {
	Create(ctx context.Context, c model.Customer) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.Customer, error)
}

// CatalogStore serves show and episode lookups.
type CatalogStore interface {
	GetShow(ctx context.Context, showID uint64) (model.Show, error)
	Cast(ctx context.Context, showID uint64, role model.CastRole) ([]model.CastMember, error)
	ListEpisodes(ctx context.Context, showID uint64) ([]model.Episode, error)
	GetEpisode(ctx context.Context, episodeID uint64) (model.Episode, error)
}

// ActorStore serves actor lookups.
type ActorStore interface {
	GetActor(ctx context.Context, actID uint64) (model.Actor, error)
}

// QueueStore serves the per-customer watch queue.
type QueueStore interface {
	ListForCustomer(ctx context.Context, custID uint64) ([]model.QueueEntry, error)
	Add(ctx context.Context, custID, showID uint64) (bool, error)
}

// SearchStore serves the free-text catalog search.
type SearchStore interface {
	Actors(ctx context.Context, term string) ([]model.Actor, error)
	Shows(ctx context.Context, term string) ([]model.Show, error)
}

// basePage carries the fields every template's header needs.
type basePage struct {
	PageTitle     string
	Authenticated bool
	Username      string
	CustID        uint64
}

// pageFor builds the base view-model from the request's session.
func pageFor(c echo.Context, title string) basePage {
	s := middleware.CurrentSession(c)
	return basePage{
		PageTitle:     title,
		Authenticated: s.Authenticated,
		Username:      s.Username,
		CustID:        s.CustID,
	}
}

// renderNotFound renders the graceful not-found state with a 404
// status.  Lookup handlers use it instead of ever dereferencing an
// empty result.
func renderNotFound(c echo.Context, base basePage, msg string) error {
	base.PageTitle = "Not Found"
	return c.Render(http.StatusNotFound, "not_found", struct {
		basePage
		Message string
	}{base, msg})
}
