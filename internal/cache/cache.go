// Package cache is a read-through cache for commerce API responses.
// It is backed by Redis when configured and by process memory otherwise.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Store is the byte-level storage behind a Cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Counter increments a fixed-window request counter.
type Counter interface {
	Incr(ctx context.Context, key string, period time.Duration) (count int64, resetAt time.Time, err error)
}

// Cache stores JSON-encoded values under namespaced keys.
type Cache struct {
	store Store
	ttl   time.Duration
}

// New returns a cache over store with a default TTL.
func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl}
}

// TTL returns the default time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key joins key parts with ':' the way Redis keys are usually spelled.
func Key(parts ...string) string {
	key := "sf"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// Invalidate drops every entry whose key starts with prefix.
func (c *Cache) Invalidate(ctx context.Context, prefix string) error {
	return c.store.DeletePrefix(ctx, prefix)
}

// Fetch returns the cached value for key, or calls load and caches its result.
// The boolean reports whether the value came from the cache.
// Storage failures are logged and fall through to load.
func Fetch[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, bool, error) {
	var zero T

	if raw, ok, err := c.store.Get(ctx, key); err != nil {
		log.Printf("cache: get %s failed: %v", key, err)
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, true, nil
		}
		log.Printf("cache: dropping undecodable entry %s", key)
	}

	v, err := load(ctx)
	if err != nil {
		return zero, false, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return zero, false, fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
	return v, false, nil
}

// Put stores v under key with the default TTL, replacing any cached value.
// Failures are logged.
func Put[T any](ctx context.Context, c *Cache, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: encode %s: %v", key, err)
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}
