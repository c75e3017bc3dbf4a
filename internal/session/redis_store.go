package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis with a sliding TTL, so state
// survives server restarts and is shared across replicas.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an established Redis client.  The TTL is the
// idle lifetime of a session; every Save resets it.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(id string) string { return "sess:" + id }

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	bs, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal(bs, &sess); err != nil {
		// Corrupt entry; treat as absent rather than failing the request.
		return Session{}, ErrNoSession
	}
	sess.ID = id
	return sess, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, sess Session) error {
	bs, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sess.ID), bs, s.ttl).Err()
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
