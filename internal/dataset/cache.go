package dataset

import (
	"sync"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

// Analytics is the read side the presentation layer consumes.
type Analytics interface {
	Summary() (domain.Summary, error)
	Metrics() (map[string]domain.Stats, error)
	Daily() ([]domain.DailyRow, error)
	Preview(n int) ([]domain.Record, error)
}

// Cached memoizes the analytics of an immutable dataset so each result is
// computed at most once per run. Only successes are cached: while no table
// is loaded every call passes through, so the first call after a late load
// still produces a result. Preview is not cached, its cost is a slice.
type Cached struct {
	inner Analytics

	mu      sync.Mutex
	summary *domain.Summary
	metrics map[string]domain.Stats
	daily   []domain.DailyRow
}

// NewCached wraps an Analytics with memoization.
func NewCached(inner Analytics) *Cached {
	return &Cached{inner: inner}
}

func (c *Cached) Summary() (domain.Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.summary != nil {
		return *c.summary, nil
	}
	s, err := c.inner.Summary()
	if err != nil {
		return domain.Summary{}, err
	}
	c.summary = &s
	return s, nil
}

func (c *Cached) Metrics() (map[string]domain.Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.metrics != nil {
		return c.metrics, nil
	}
	m, err := c.inner.Metrics()
	if err != nil {
		return nil, err
	}
	c.metrics = m
	return m, nil
}

func (c *Cached) Daily() ([]domain.DailyRow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.daily != nil {
		return c.daily, nil
	}
	d, err := c.inner.Daily()
	if err != nil {
		return nil, err
	}
	c.daily = d
	return d, nil
}

func (c *Cached) Preview(n int) ([]domain.Record, error) {
	return c.inner.Preview(n)
}
