package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/model"
)

func seededCatalog() *fakeCatalog {
	f := newFakeCatalog()
	f.shows[1] = model.Show{
		ShowID: 1, Title: "Futurama", Network: "Fox",
		PremiereYear: 1999, Creator: "Matt Groening", Category: "Animation",
	}
	f.episodes[1] = []model.Episode{
		{ShowID: 1, EpisodeID: 10, Title: "Space Pilot 3000", AirDate: time.Date(1999, 3, 28, 0, 0, 0, 0, time.UTC)},
		{ShowID: 1, EpisodeID: 11, Title: "The Series Has Landed", AirDate: time.Date(1999, 4, 4, 0, 0, 0, 0, time.UTC)},
	}
	f.cast[1] = map[model.CastRole][]model.CastMember{
		model.CastMain: {
			{ActID: 100, FirstName: "Billy", LastName: "West", Role: "Fry", Billing: model.CastMain},
		},
		model.CastRecurring: {
			{ActID: 101, FirstName: "Frank", LastName: "Welker", Role: "Nibbler", Billing: model.CastRecurring},
		},
	}
	return f
}

func getPage(t *testing.T, e *echo.Echo, h echo.HandlerFunc, path, param, value string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	c.SetParamNames(param)
	c.SetParamValues(value)
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestShowDetailRendersCast(t *testing.T) {
	e := newTestEcho(t)
	h := NewCatalogHandler(seededCatalog(), &fakeActors{})

	rec := getPage(t, e, h.ShowDetail, "/search/1", "showID", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"Futurama", "Matt Groening", "Billy West", "Frank Welker"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestShowDetailNotFound(t *testing.T) {
	e := newTestEcho(t)
	h := NewCatalogHandler(seededCatalog(), &fakeActors{})

	cases := []struct {
		name  string
		value string
	}{
		{"unknown id", "99"},
		{"non-numeric id", "abc"},
		{"negative id", "-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := getPage(t, e, h.ShowDetail, "/search/"+tc.value, "showID", tc.value)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
			}
			if !strings.Contains(rec.Body.String(), "No such show.") {
				t.Error("body missing the not-found message")
			}
		})
	}
}

func TestShowEpisodesPreservesOrder(t *testing.T) {
	e := newTestEcho(t)
	h := NewCatalogHandler(seededCatalog(), &fakeActors{})

	rec := getPage(t, e, h.ShowEpisodes, "/shows/1", "showID", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	first := strings.Index(body, "Space Pilot 3000")
	second := strings.Index(body, "The Series Has Landed")
	if first < 0 || second < 0 {
		t.Fatal("episode titles missing from the listing")
	}
	if first > second {
		t.Error("episodes rendered out of order")
	}
}

func TestEpisodeDetailShowsOwningShowCast(t *testing.T) {
	e := newTestEcho(t)
	h := NewCatalogHandler(seededCatalog(), &fakeActors{})

	rec := getPage(t, e, h.EpisodeDetail, "/episode/10", "episodeID", "10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"Space Pilot 3000", "Futurama", "Billy West"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestEpisodeDetailNotFound(t *testing.T) {
	e := newTestEcho(t)
	h := NewCatalogHandler(seededCatalog(), &fakeActors{})

	rec := getPage(t, e, h.EpisodeDetail, "/episode/999", "episodeID", "999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "No such episode.") {
		t.Error("body missing the not-found message")
	}
}

func TestActorDetail(t *testing.T) {
	e := newTestEcho(t)
	actors := &fakeActors{rows: map[uint64]model.Actor{
		100: {ActID: 100, FirstName: "Billy", LastName: "West"},
	}}
	h := NewCatalogHandler(seededCatalog(), actors)

	rec := getPage(t, e, h.ActorDetail, "/actor/100", "actID", "100")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Billy") || !strings.Contains(rec.Body.String(), "West") {
		t.Error("body missing the actor's name")
	}

	rec = getPage(t, e, h.ActorDetail, "/actor/999", "actID", "999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "No such actor.") {
		t.Error("body missing the not-found message")
	}
}
