package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map.  It backs tests
// and the degraded mode used when Redis is unreachable at startup;
// sessions then live only as long as the process.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memEntry
	now     func() time.Time // stubbed in tests
}

type memEntry struct {
	sess      Session
	expiresAt time.Time
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memEntry),
		now:     time.Now,
	}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return Session{}, ErrNoSession
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return Session{}, ErrNoSession
	}
	return e.sess, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.ID] = memEntry{sess: sess, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
