package seriescache

import (
	"sync"
	"time"

	"StockScope/internal/domain/models"
)

// entry holds a generated series with its creation instant.
type entry struct {
	data      []models.PricePoint
	timestamp time.Time
}

// Cache memoizes price series per symbol for a TTL window. Entries are
// replaced wholesale on expiry and never deleted; memory is bounded only by
// the number of distinct symbols ever requested.
type Cache struct {
	mu  sync.Mutex
	m   map[string]entry
	ttl time.Duration
	now func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock injects the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache with the given TTL.
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		m:   make(map[string]entry),
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns the cached series for symbol when it is younger than
// the TTL, otherwise calls compute and stores the result. Two concurrent
// misses for the same symbol may both compute; the last write wins.
func (c *Cache) GetOrCompute(symbol string, compute func(string) ([]models.PricePoint, error)) ([]models.PricePoint, error) {
	now := c.now()

	c.mu.Lock()
	if e, ok := c.m[symbol]; ok && now.Sub(e.timestamp) < c.ttl {
		c.mu.Unlock()
		return e.data, nil
	}
	c.mu.Unlock()

	data, err := compute(symbol)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.m[symbol] = entry{data: data, timestamp: now}
	c.mu.Unlock()

	return data, nil
}

// Reset drops all entries. Used by tests.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.m = make(map[string]entry)
	c.mu.Unlock()
}
