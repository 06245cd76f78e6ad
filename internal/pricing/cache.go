package pricing

import (
	"sync"
	"time"
)

// Cache TTL bounds. The default keeps repeat quotes for the same inputs
// cheap within a session without letting tariff updates go stale for long.
const (
	DefaultTTL = time.Hour
	MinTTL     = time.Minute
	MaxTTL     = 7 * 24 * time.Hour
)

// cacheEntry wraps a quote with its expiration timestamp.
type cacheEntry struct {
	quote     Quote
	expiresAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Cache is an in-memory TTL cache of priced quotes, keyed by the stable
// input hash. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry

	// now is swappable for tests.
	now func() time.Time
}

// NewCache returns a cache with the given TTL, clamped to [MinTTL, MaxTTL].
// A zero TTL uses DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	switch {
	case ttl == 0:
		ttl = DefaultTTL
	case ttl < MinTTL:
		ttl = MinTTL
	case ttl > MaxTTL:
		ttl = MaxTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: map[string]cacheEntry{},
		now:     time.Now,
	}
}

// Get returns the cached quote for key if present and unexpired.
func (c *Cache) Get(key string) (Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Quote{}, false
	}
	if e.expired(c.now()) {
		delete(c.entries, key)
		return Quote{}, false
	}
	return e.quote, true
}

// Put stores a quote under key with the cache's TTL.
func (c *Cache) Put(key string, q Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{quote: q, expiresAt: c.now().Add(c.ttl)}
}

// Len reports the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
