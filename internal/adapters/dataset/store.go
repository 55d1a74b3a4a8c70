package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/okian/riskboard/pkg/metrics"
)

// Loader turns a source path into a normalized table.
type Loader func(path string) (*Table, error)

// Store memoizes the normalized table process-wide: populated on first
// access, never expiring within a run. The initialization check is
// guarded because the HTTP host is multi-threaded; after the single
// write the table is only ever read.
type Store struct {
	path   string
	loader Loader

	mu    sync.RWMutex
	table *Table
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithLoader overrides the load function. Intended for tests.
func WithLoader(loader Loader) Option {
	return func(s *Store) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// NewStore creates a Store for the dataset at path. Nothing is read
// until the first Table call.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		loader: Load,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the cached normalized table, loading it on first access.
// A failed load is not cached; the next access retries, and no partial
// table is ever returned.
func (s *Store) Table(_ context.Context) (*Table, error) {
	s.mu.RLock()
	if t := s.table; t != nil {
		s.mu.RUnlock()
		return t, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table != nil {
		return s.table, nil
	}

	start := time.Now()
	table, err := s.loader(s.path)
	if err != nil {
		metrics.RecordDatasetLoadError()
		return nil, err
	}
	metrics.RecordDatasetLoad(float64(time.Since(start).Milliseconds()), len(table.Records), table.SkippedRows)

	s.table = table
	return s.table, nil
}

// Loaded reports whether the table has been populated.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table != nil
}

// Invalidate drops the cached table so the next access re-reads the
// source. The only sanctioned path to new data within a run.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
}
