package ttlcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	cache := NewWithClock[string](func() time.Time { return now })

	cache.Set("k", "v", 5*time.Minute)

	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	now = now.Add(4 * time.Minute)
	_, ok = cache.Get("k")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheOverwriteResetsTTL(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	cache := NewWithClock[int](func() time.Time { return now })

	cache.Set("k", 1, time.Minute)
	now = now.Add(50 * time.Second)
	cache.Set("k", 2, time.Minute)

	now = now.Add(30 * time.Second)
	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	cache := New[string]()
	_, ok := cache.Get("missing")
	assert.False(t, ok)
}
