package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/model"
	"github.com/hotsauce86/Stream-TV/internal/repository"
)

// CatalogHandler serves the read-only catalog pages: show detail,
// episode listing, episode detail and actor detail.
type CatalogHandler struct {
	Shows  CatalogStore
	Actors ActorStore
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(shows CatalogStore, actors ActorStore) *CatalogHandler {
	return &CatalogHandler{Shows: shows, Actors: actors}
}

// showPage is the view-model for the show detail template.
type showPage struct {
	basePage
	Show          model.Show
	MainCast      []model.CastMember
	RecurringCast []model.CastMember
}

// episodesPage is the view-model for a show's episode listing.
type episodesPage struct {
	basePage
	Show     model.Show
	Episodes []model.Episode
}

// episodePage is the view-model for one episode, with the owning
// show's cast.
type episodePage struct {
	basePage
	Show          model.Show
	Episode       model.Episode
	MainCast      []model.CastMember
	RecurringCast []model.CastMember
}

// actorPage is the view-model for the actor detail template.
type actorPage struct {
	basePage
	Actor model.Actor
}

// pathID parses a numeric path parameter.  Non-numeric values are
// indistinguishable from absent entities to the visitor.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil
}

// ShowDetail renders a show's descriptive fields and both cast lists.
// The route is /search/:showID for compatibility with the original
// URL scheme, where the name predates the free-text search page.
func (h *CatalogHandler) ShowDetail(c echo.Context) error {
	id, ok := pathID(c, "showID")
	if !ok {
		return renderNotFound(c, pageFor(c, ""), "No such show.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	show, err := h.Shows.GetShow(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return renderNotFound(c, pageFor(c, ""), "No such show.")
		}
		return err
	}
	main, err := h.Shows.Cast(ctx, id, model.CastMain)
	if err != nil {
		return err
	}
	recurring, err := h.Shows.Cast(ctx, id, model.CastRecurring)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "show", showPage{
		basePage:      pageFor(c, show.Title),
		Show:          show,
		MainCast:      main,
		RecurringCast: recurring,
	})
}

// ShowEpisodes renders a show's episodes in ascending episode order.
func (h *CatalogHandler) ShowEpisodes(c echo.Context) error {
	id, ok := pathID(c, "showID")
	if !ok {
		return renderNotFound(c, pageFor(c, ""), "No such show.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	show, err := h.Shows.GetShow(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return renderNotFound(c, pageFor(c, ""), "No such show.")
		}
		return err
	}
	episodes, err := h.Shows.ListEpisodes(ctx, id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "episodes", episodesPage{
		basePage: pageFor(c, show.Title),
		Show:     show,
		Episodes: episodes,
	})
}

// EpisodeDetail renders one episode with the owning show's cast.
func (h *CatalogHandler) EpisodeDetail(c echo.Context) error {
	id, ok := pathID(c, "episodeID")
	if !ok {
		return renderNotFound(c, pageFor(c, ""), "No such episode.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	episode, err := h.Shows.GetEpisode(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return renderNotFound(c, pageFor(c, ""), "No such episode.")
		}
		return err
	}
	show, err := h.Shows.GetShow(ctx, episode.ShowID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Orphaned episode; treat the page as absent.
			return renderNotFound(c, pageFor(c, ""), "No such episode.")
		}
		return err
	}
	main, err := h.Shows.Cast(ctx, show.ShowID, model.CastMain)
	if err != nil {
		return err
	}
	recurring, err := h.Shows.Cast(ctx, show.ShowID, model.CastRecurring)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "episode", episodePage{
		basePage:      pageFor(c, episode.Title),
		Show:          show,
		Episode:       episode,
		MainCast:      main,
		RecurringCast: recurring,
	})
}

// ActorDetail renders an actor's name fields.
func (h *CatalogHandler) ActorDetail(c echo.Context) error {
	id, ok := pathID(c, "actID")
	if !ok {
		return renderNotFound(c, pageFor(c, ""), "No such actor.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	actor, err := h.Actors.GetActor(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return renderNotFound(c, pageFor(c, ""), "No such actor.")
		}
		return err
	}

	return c.Render(http.StatusOK, "actor", actorPage{
		basePage: pageFor(c, actor.FirstName+" "+actor.LastName),
		Actor:    actor,
	})
}
