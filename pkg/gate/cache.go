package gate

import (
	"sync"
	"time"
)

type cacheEntry struct {
	payload   string
	expiresAt time.Time
}

// resultCache is a TTL cache of delivered payloads keyed by normalized
// identifier. Blocked results are never cached; the set lookup is already
// O(1), and a cached denial would mask policy removals.
type resultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *resultCache) get(identifier string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[identifier]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.payload, true
}

func (c *resultCache) put(identifier, payload string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[identifier] = cacheEntry{
		payload:   payload,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *resultCache) invalidate(identifier string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, identifier)
}
