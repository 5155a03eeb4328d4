// Package cache implements time-boxed memoization of generated responses,
// keyed by case-folded query text.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a cached response stays servable.
const DefaultTTL = 5 * time.Minute

type entry struct {
	response string
	storedAt time.Time
}

// ResponseCache memoizes generated responses. Keys are the raw query
// lower-cased verbatim: queries differing only in case collide, queries
// differing in whitespace or punctuation do not. Expired entries are
// treated as misses but left in place (lazy expiry, matching the
// limiter's lazy prune).
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	now func() time.Time
}

// NewResponseCache creates a cache with the default TTL.
func NewResponseCache() *ResponseCache {
	return NewResponseCacheWithTTL(DefaultTTL)
}

// NewResponseCacheWithTTL creates a cache with an explicit TTL.
func NewResponseCacheWithTTL(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached response for the query, if present and fresh.
func (c *ResponseCache) Get(query string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[normalizeKey(query)]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		return "", false
	}
	return e.response, true
}

// Put stores the response for the query, unconditionally overwriting any
// existing entry with a fresh timestamp.
func (c *ResponseCache) Put(query, response string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[normalizeKey(query)] = entry{
		response: response,
		storedAt: c.now(),
	}
}

// Len returns the number of entries held, expired included.
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func normalizeKey(query string) string {
	return strings.ToLower(query)
}
