// Package dataset orchestrates the load-and-clean run and fronts the
// cleaned table's analytics for the presentation layer.
package dataset

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
)

// Loader reads a raw table from a dataset path.
type Loader interface {
	Load(path string) (domain.Table, error)
}

// Service loads the dataset once per process run, cleans it, and answers
// analytics queries over the cleaned table. All query methods return
// domain.ErrNoDataset until a load has succeeded; the caller is expected to
// turn that into a user-facing notice, not a crash.
type Service struct {
	loader  Loader
	path    string
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock

	mu       sync.RWMutex
	table    *domain.Table
	loadedAt time.Time

	ready atomic.Bool
}

// New creates a Service. Pass a nil clock to use real time.
func New(loader Loader, path string, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		loader:  loader,
		path:    path,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// Load runs the loader, cleans the result, and swaps in the cleaned table.
// On failure the service keeps whatever table it had (normally none) and
// the error is reported to the caller; the process is expected to continue.
func (s *Service) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := s.clock.Now()
	raw, err := s.loader.Load(s.path)
	if err != nil {
		s.metrics.DatasetFailures.Inc()
		s.logger.Error("dataset load failed", "path", s.path, "error", err)
		return err
	}

	cleaned := domain.Clean(raw)

	s.mu.Lock()
	s.table = &cleaned
	s.loadedAt = s.clock.Now()
	s.mu.Unlock()
	s.ready.Store(true)

	s.metrics.DatasetLoads.Inc()
	s.metrics.DatasetRows.Set(float64(len(cleaned.Rows)))
	s.metrics.LoadDuration.Observe(s.clock.Since(start).Seconds())
	for col, missing := range domain.MissingCounts(cleaned) {
		s.metrics.MissingValues.WithLabelValues(col).Set(float64(missing))
	}

	s.logger.Info("dataset ready",
		"rows", len(cleaned.Rows),
		"columns", len(cleaned.Columns),
		"duration", s.clock.Since(start),
	)
	return nil
}

// CheckReadiness returns nil once a dataset has been loaded and cleaned,
// or an error describing why the service is not yet ready.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("dataset has not been loaded yet")
	}
	return nil
}

// LoadedAt returns when the current table was installed, zero if none.
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Summary computes the dataset-level summary.
func (s *Service) Summary() (domain.Summary, error) {
	t, ok := s.snapshot()
	if !ok {
		return domain.Summary{}, domain.ErrNoDataset
	}
	return domain.Summarize(t), nil
}

// Metrics computes per-variable descriptive statistics.
func (s *Service) Metrics() (map[string]domain.Stats, error) {
	t, ok := s.snapshot()
	if !ok {
		return nil, domain.ErrNoDataset
	}
	return domain.VariableMetrics(t), nil
}

// Daily computes per-day means for all numeric columns.
func (s *Service) Daily() ([]domain.DailyRow, error) {
	t, ok := s.snapshot()
	if !ok {
		return nil, domain.ErrNoDataset
	}
	return domain.DailyAverages(t), nil
}

// Preview returns the first n cleaned records, fewer if the table is shorter.
func (s *Service) Preview(n int) ([]domain.Record, error) {
	t, ok := s.snapshot()
	if !ok {
		return nil, domain.ErrNoDataset
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return t.Rows[:n], nil
}

func (s *Service) snapshot() (domain.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return domain.Table{}, false
	}
	return *s.table, true
}
