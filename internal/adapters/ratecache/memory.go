// Package ratecache provides an in-memory, TTL-bounded cache of resolved
// exchange rates. Keys are directional currency pairs: the cache never derives
// an inverse rate from a stored one, because the upstream table quotes each
// direction independently.
package ratecache

import (
	"sync"
	"time"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

type entry struct {
	rate      decimal.Decimal
	expiresAt time.Time
}

// Memory is a concurrency-safe map-backed RateCache. Expiry is absolute
// (stamped at write time) and checked lazily on read; there is no eviction
// goroutine. Last writer wins on racing writes for the same pair, which is
// acceptable because rates are idempotent facts.
type Memory struct {
	mu      sync.RWMutex
	entries map[domain.RatePair]entry

	now     func() time.Time
	metrics *metrics.ConversionMetrics
}

// NewMemory returns an empty cache. metrics may be nil.
func NewMemory(m *metrics.ConversionMetrics) *Memory {
	return &Memory{
		entries: make(map[domain.RatePair]entry),
		now:     time.Now,
		metrics: m,
	}
}

// Get returns the cached rate for the pair if present and not expired.
// Expired entries are removed on access.
func (c *Memory) Get(pair domain.RatePair) (decimal.Decimal, bool) {
	c.mu.RLock()
	e, ok := c.entries[pair]
	c.mu.RUnlock()

	if ok && c.now().Before(e.expiresAt) {
		if c.metrics != nil {
			c.metrics.RecordCacheHit()
		}
		return e.rate, true
	}

	if ok {
		// Expired: drop it so the map does not accumulate stale pairs.
		c.mu.Lock()
		if cur, still := c.entries[pair]; still && !c.now().Before(cur.expiresAt) {
			delete(c.entries, pair)
		}
		c.mu.Unlock()
	}

	if c.metrics != nil {
		c.metrics.RecordCacheMiss()
	}
	return decimal.Decimal{}, false
}

// Set stores the rate for the pair, expiring after ttl.
func (c *Memory) Set(pair domain.RatePair, rate decimal.Decimal, ttl time.Duration) {
	c.mu.Lock()
	c.entries[pair] = entry{rate: rate, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
