package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachePutGet(t *testing.T) {
	c := NewCache(time.Hour)
	c.Put("k1", Quote{QuoteID: "q-1", CapexUSD: 100})

	q, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "q-1", q.QuoteID)

	_, ok = c.Get("k2")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(time.Hour)

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("k", Quote{QuoteID: "q"})
	_, ok := c.Get("k")
	assert.True(t, ok)

	c.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, ok = c.Get("k")
	assert.False(t, ok, "entry past its TTL must not be served")
	assert.Zero(t, c.Len(), "expired entry is evicted on read")
}

func TestCacheTTLClamping(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewCache(0).ttl)
	assert.Equal(t, MinTTL, NewCache(time.Millisecond).ttl)
	assert.Equal(t, MaxTTL, NewCache(30*24*time.Hour).ttl)
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache(time.Hour)
	c.Put("k", Quote{QuoteID: "old"})
	c.Put("k", Quote{QuoteID: "new"})

	q, _ := c.Get("k")
	assert.Equal(t, "new", q.QuoteID)
	assert.Equal(t, 1, c.Len())
}
