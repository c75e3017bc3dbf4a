package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/model"
)

// SearchHandler serves the free-text catalog search.
type SearchHandler struct {
	Catalog SearchStore
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(catalog SearchStore) *SearchHandler {
	return &SearchHandler{Catalog: catalog}
}

// searchPage is the view-model for the search template.  Searched
// distinguishes "no query yet" from "query with no matches".
type searchPage struct {
	basePage
	Query        string
	Searched     bool
	ActorMatches []model.Actor
	ShowMatches  []model.Show
}

// Search renders the search form and, when a query is present, the
// two result sets.  An empty query re-displays the form with empty
// results; it is not an error.
func (h *SearchHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.FormValue("query"))
	page := searchPage{basePage: pageFor(c, "Search"), Query: query}

	if query == "" {
		return c.Render(http.StatusOK, "search", page)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	actors, err := h.Catalog.Actors(ctx, query)
	if err != nil {
		return err
	}
	shows, err := h.Catalog.Shows(ctx, query)
	if err != nil {
		return err
	}

	page.Searched = true
	page.ActorMatches = actors
	page.ShowMatches = shows
	return c.Render(http.StatusOK, "search", page)
}
