package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss indicates the key was not present in the cache
var ErrMiss = errors.New("cache miss")

// Store is a small JSON cache on top of the Redis client. A nil Store is
// valid and behaves as if every lookup misses, so callers can run without
// Redis configured.
type Store struct {
	prefix string
	ttl    time.Duration
}

// NewStore creates a cache store. Keys are namespaced with the given prefix.
func NewStore(prefix string, ttl time.Duration) *Store {
	return &Store{prefix: prefix, ttl: ttl}
}

// GetJSON loads and decodes a cached value into dest. Returns ErrMiss when
// the key is absent.
func (s *Store) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if s == nil || client == nil {
		return ErrMiss
	}

	raw, err := Get(ctx, s.prefix+key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// SetJSON encodes and stores a value under the store's TTL
func (s *Store) SetJSON(ctx context.Context, key string, value interface{}) error {
	if s == nil || client == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Set(ctx, s.prefix+key, string(raw), s.ttl)
}

// Invalidate removes a cached value
func (s *Store) Invalidate(ctx context.Context, key string) error {
	if s == nil || client == nil {
		return nil
	}
	return Del(ctx, s.prefix+key)
}
