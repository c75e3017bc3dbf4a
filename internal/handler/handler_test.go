package handler

// Shared test fixtures: an Echo instance wired to the real templates,
// plus in-memory fakes for every store interface.  The fakes let the
// handler flows run end to end without MySQL, Redis or RabbitMQ.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/model"
	"github.com/hotsauce86/Stream-TV/internal/queue"
	"github.com/hotsauce86/Stream-TV/internal/repository"
	"github.com/hotsauce86/Stream-TV/internal/view"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	r, err := view.New()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	e := echo.New()
	e.Renderer = r
	return e
}

func postForm(path string, vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// ----- customer fake -----

type fakeCustomers struct {
	mu      sync.Mutex
	rows    map[string]model.Customer
	nextID  uint64
	creates int
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{rows: map[string]model.Customer{}}
}

func (f *fakeCustomers) Create(_ context.Context, c model.Customer) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[c.Username]; ok {
		return 0, repository.ErrUsernameTaken
	}
	f.nextID++
	f.creates++
	c.CustID = f.nextID
	f.rows[c.Username] = c
	return c.CustID, nil
}

func (f *fakeCustomers) GetByUsername(_ context.Context, username string) (model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[username]
	if !ok {
		return model.Customer{}, repository.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomers) created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

// ----- catalog fakes -----

type fakeCatalog struct {
	shows    map[uint64]model.Show
	episodes map[uint64][]model.Episode // keyed by show id
	cast     map[uint64]map[model.CastRole][]model.CastMember
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		shows:    map[uint64]model.Show{},
		episodes: map[uint64][]model.Episode{},
		cast:     map[uint64]map[model.CastRole][]model.CastMember{},
	}
}

func (f *fakeCatalog) GetShow(_ context.Context, id uint64) (model.Show, error) {
	s, ok := f.shows[id]
	if !ok {
		return model.Show{}, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeCatalog) Cast(_ context.Context, id uint64, role model.CastRole) ([]model.CastMember, error) {
	return f.cast[id][role], nil
}

func (f *fakeCatalog) ListEpisodes(_ context.Context, id uint64) ([]model.Episode, error) {
	return f.episodes[id], nil
}

func (f *fakeCatalog) GetEpisode(_ context.Context, id uint64) (model.Episode, error) {
	for _, eps := range f.episodes {
		for _, e := range eps {
			if e.EpisodeID == id {
				return e, nil
			}
		}
	}
	return model.Episode{}, repository.ErrNotFound
}

type fakeActors struct {
	rows map[uint64]model.Actor
}

func (f *fakeActors) GetActor(_ context.Context, id uint64) (model.Actor, error) {
	a, ok := f.rows[id]
	if !ok {
		return model.Actor{}, repository.ErrNotFound
	}
	return a, nil
}

type fakeSearch struct {
	actors map[string][]model.Actor
	shows  map[string][]model.Show
}

func (f *fakeSearch) Actors(_ context.Context, term string) ([]model.Actor, error) {
	if m := f.actors[term]; m != nil {
		return m, nil
	}
	return []model.Actor{}, nil
}

func (f *fakeSearch) Shows(_ context.Context, term string) ([]model.Show, error) {
	if m := f.shows[term]; m != nil {
		return m, nil
	}
	return []model.Show{}, nil
}

// ----- queue fakes -----

type fakeQueue struct {
	mu      sync.Mutex
	entries map[uint64][]model.QueueEntry
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{entries: map[uint64][]model.QueueEntry{}}
}

func (f *fakeQueue) ListForCustomer(_ context.Context, custID uint64) ([]model.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]model.QueueEntry{}, f.entries[custID]...)
	return out, nil
}

func (f *fakeQueue) Add(_ context.Context, custID, showID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries[custID] {
		if e.ShowID == showID {
			return false, nil
		}
	}
	f.entries[custID] = append(f.entries[custID], model.QueueEntry{CustID: custID, ShowID: showID})
	return true, nil
}

type fakePublisher struct {
	events chan queue.ShowQueuedEvent
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan queue.ShowQueuedEvent, 8)}
}

func (f *fakePublisher) PublishShowQueued(_ context.Context, ev queue.ShowQueuedEvent) error {
	f.events <- ev
	return nil
}
