package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hotsauce86/Stream-TV/internal/model"
)

func TestSearchEmptyQueryShowsFormOnly(t *testing.T) {
	e := newTestEcho(t)
	h := NewSearchHandler(&fakeSearch{})

	for _, query := range []string{"", "   "} {
		rec := httptest.NewRecorder()
		c := e.NewContext(postForm("/search", url.Values{"query": {query}}), rec)
		if err := h.Search(c); err != nil {
			t.Fatalf("search: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		// No result sections until a query is actually submitted.
		if strings.Contains(rec.Body.String(), "<h2>Actors</h2>") {
			t.Errorf("query %q must not render result sections", query)
		}
	}
}

func TestSearchNoMatchesRendersBothEmptySets(t *testing.T) {
	e := newTestEcho(t)
	h := NewSearchHandler(&fakeSearch{})

	rec := httptest.NewRecorder()
	c := e.NewContext(postForm("/search", url.Values{"query": {"zzzz"}}), rec)
	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No matching actors.") {
		t.Error("missing the empty actor set")
	}
	if !strings.Contains(body, "No matching shows.") {
		t.Error("missing the empty show set")
	}
}

func TestSearchRendersBothResultSets(t *testing.T) {
	e := newTestEcho(t)
	h := NewSearchHandler(&fakeSearch{
		actors: map[string][]model.Actor{
			"west": {{ActID: 100, FirstName: "Billy", LastName: "West"}},
		},
		shows: map[string][]model.Show{
			"west": {{ShowID: 3, Title: "Westworld"}},
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(postForm("/search", url.Values{"query": {"west"}}), rec)
	if err := h.Search(c); err != nil {
		t.Fatalf("search: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `/actor/100`) || !strings.Contains(body, "Billy West") {
		t.Error("actor match missing from the results")
	}
	if !strings.Contains(body, `/search/3`) || !strings.Contains(body, "Westworld") {
		t.Error("show match missing from the results")
	}
	// The submitted query is echoed back into the form.
	if !strings.Contains(body, `value="west"`) {
		t.Error("query not echoed back into the search box")
	}
}
