/*
cache.go - Memoization of generated grids

PURPOSE:
  Generation is a pure function of (Config, kind, range), so results can be
  shared between callers. Cache keeps a bounded number of results keyed by
  a BLAKE2b-256 digest of those inputs. The hex digest is also a strong
  HTTP ETag for the api package.

EVICTION:
  When full, the oldest inserted entry is dropped (FIFO).

CONCURRENCY:
  Uses sync.RWMutex. Cached slices are shared and must not be mutated.
*/
package calendar

import (
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Grid kinds participating in cache keys.
const (
	KindMonths = "months"
	KindWeeks  = "weeks"
)

// DefaultCacheSize bounds NewCache(0).
const DefaultCacheSize = 512

// Cache memoizes MonthContexts and WeekContexts results.
type Cache struct {
	mu      sync.RWMutex
	max     int
	entries map[string]any
	order   []string

	hits, misses uint64
}

// NewCache creates a cache holding at most size results.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{max: size, entries: make(map[string]any)}
}

// CacheKey returns the hex BLAKE2b-256 digest identifying a generation.
func CacheKey(cfg Config, kind string, r DateRange) string {
	sum := blake2b.Sum256([]byte(cfg.Fingerprint() + "|" + kind + "|" +
		r.Start.UTC().Format(time.RFC3339Nano) + "|" + r.End.UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:])
}

// Months returns g.MonthContexts(r), generating on a miss.
func (c *Cache) Months(g *Generator, r DateRange) ([]MonthContext, string) {
	key := CacheKey(g.Config(), KindMonths, r)
	if v, ok := c.get(key); ok {
		return v.([]MonthContext), key
	}
	months := g.MonthContexts(r)
	c.put(key, months)
	return months, key
}

// Weeks returns g.WeekContexts(r), generating on a miss.
func (c *Cache) Weeks(g *Generator, r DateRange) ([]WeekContext, string) {
	key := CacheKey(g.Config(), KindWeeks, r)
	if v, ok := c.get(key); ok {
		return v.([]WeekContext), key
	}
	weeks := g.WeekContexts(r)
	c.put(key, weeks)
	return weeks, key
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *Cache) put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	for len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = v
	c.order = append(c.order, key)
}
