package ttlcache

import (
	"sync"
	"time"
)

// Clock abstracts time for deterministic expiry in tests.
type Clock func() time.Time

// Cache is a small in-process TTL cache. Expired entries are dropped lazily
// on access; there is no background sweeper. Writers racing on the same key
// follow last-writer-wins.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     Clock
}

type entry[V any] struct {
	value   V
	expires time.Time
}

// New creates a cache using the wall clock.
func New[V any]() *Cache[V] {
	return NewWithClock[V](time.Now)
}

// NewWithClock creates a cache with an injected clock.
func NewWithClock[V any](now Clock) *Cache[V] {
	if now == nil {
		now = time.Now
	}
	return &Cache[V]{entries: make(map[string]entry[V]), now: now}
}

// Get returns the cached value and whether it is present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expires) {
		c.mu.Lock()
		if current, still := c.entries[key]; still && current.expires.Equal(e.expires) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores the value under key for ttl.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expires: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes the key if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len reports the number of stored entries, including any not yet swept.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
