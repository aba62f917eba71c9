package sheetstore

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// TTLCache is a small get-or-fetch cache with explicit invalidation. Entries
// expire after their TTL; nothing evicts them in the background, so the key
// space must stay small (one key per entity here).

type TTLCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewTTLCache() *TTLCache {
	return &TTLCache{entries: map[string]cacheEntry{}, now: time.Now}
}

// GetOrFetch returns the cached value for key when present and fresh;
// otherwise it calls fetch, caches a successful result for ttl and returns
// it. A fetch error is returned without caching.
func (c *TTLCache) GetOrFetch(key string, ttl time.Duration, fetch func() (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	v, err := fetch()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: v, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return v, nil
}

func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *TTLCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = map[string]cacheEntry{}
	c.mu.Unlock()
}
