// Package service provides the core business service that implements
// the dependencies required by the HTTP API: the one-time dataset load
// and the per-request filter-summarize pipeline.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/okian/riskboard/internal/adapters/dataset"
	"github.com/okian/riskboard/internal/adapters/export"
	"github.com/okian/riskboard/internal/domain/bins"
	"github.com/okian/riskboard/internal/domain/model"
	"github.com/okian/riskboard/internal/domain/summary"
	"github.com/okian/riskboard/internal/domain/types"
	"github.com/okian/riskboard/pkg/logger"
	"github.com/okian/riskboard/pkg/metrics"
)

// Service implements the API dependencies for the exploration dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	store *dataset.Store

	// Configuration
	datasetPath      string
	maxScatterPoints int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPath sets the dataset source path.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithMaxScatterPoints caps the scatter projection; 0 means unlimited.
func WithMaxScatterPoints(limit int) Option {
	return func(s *Service) {
		if limit >= 0 {
			s.maxScatterPoints = limit
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore overrides the dataset store. Intended for tests.
func WithStore(store *dataset.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		datasetPath:      "compas-scores-two-years.csv",
		maxScatterPoints: 0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset into the process-wide cache. A load or schema
// failure here is fatal to the session; no degraded table is served.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = dataset.NewStore(s.datasetPath)
	}

	s.logger.Info(ctx, "loading dataset", logger.String("path", s.datasetPath))
	table, err := s.store.Table(ctx)
	if err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "dataset ready",
		logger.Int("rows", len(table.Records)),
		logger.Int("skippedRows", table.SkippedRows),
		logger.Int("races", len(table.Races)),
		logger.Int("ageCategories", len(table.AgeCategories)),
	)
	return nil
}

// Stop releases the service. The cached table stays in memory; there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

func (s *Service) table(ctx context.Context) (*dataset.Table, error) {
	s.mu.RLock()
	started := s.started
	store := s.store
	s.mu.RUnlock()

	if !started || store == nil {
		return nil, ErrNotStarted
	}
	return store.Table(ctx)
}

// FilterOptions returns the widget-building data for the renderer.
func (s *Service) FilterOptions(ctx context.Context) (types.FilterOptions, error) {
	table, err := s.table(ctx)
	if err != nil {
		return types.FilterOptions{}, err
	}
	return types.FilterOptions{
		Races:          table.Races,
		AgeCategories:  table.AgeCategories,
		AgeCategoryAll: model.AgeCategoryAll,
		PriorsBins:     bins.Labels(),
		Rows:           len(table.Records),
		SkippedRows:    table.SkippedRows,
		LoadedAt:       table.LoadedAt,
	}, nil
}

// Summaries recomputes all three summaries for the criteria. One
// criteria change maps to exactly one call.
func (s *Service) Summaries(ctx context.Context, criteria model.FilterCriteria) (summary.Bundle, error) {
	table, err := s.table(ctx)
	if err != nil {
		return summary.Bundle{}, err
	}

	start := time.Now()
	bundle := summary.Compute(table.Records, criteria, s.maxScatterPoints)
	metrics.RecordSummary("bundle", float64(time.Since(start).Milliseconds()))
	metrics.RecordFilteredSubsetSize(bundle.SubsetRows)
	return bundle, nil
}

// Trend computes only the trend summary for the criteria.
func (s *Service) Trend(ctx context.Context, criteria model.FilterCriteria) ([]summary.TrendRow, error) {
	bundle, err := s.compute(ctx, criteria, "trend")
	if err != nil {
		return nil, err
	}
	return bundle.Trend, nil
}

// Scatter computes only the scatter projection for the criteria.
func (s *Service) Scatter(ctx context.Context, criteria model.FilterCriteria) ([]summary.ScatterPoint, error) {
	bundle, err := s.compute(ctx, criteria, "scatter")
	if err != nil {
		return nil, err
	}
	return bundle.Scatter, nil
}

func (s *Service) compute(ctx context.Context, criteria model.FilterCriteria, kind string) (summary.Bundle, error) {
	table, err := s.table(ctx)
	if err != nil {
		return summary.Bundle{}, err
	}
	start := time.Now()
	bundle := summary.Compute(table.Records, criteria, s.maxScatterPoints)
	metrics.RecordSummary(kind, float64(time.Since(start).Milliseconds()))
	return bundle, nil
}

// ErrorRates returns the static reference table. It ignores criteria and
// the loaded dataset by contract.
func (s *Service) ErrorRates(_ context.Context) []summary.ErrorRate {
	start := time.Now()
	rates := summary.ErrorRates()
	metrics.RecordSummary("error_rates", float64(time.Since(start).Milliseconds()))
	return rates
}

// ExportWorkbook renders the criteria's summaries as an Excel workbook.
func (s *Service) ExportWorkbook(ctx context.Context, criteria model.FilterCriteria) (*excelize.File, error) {
	bundle, err := s.Summaries(ctx, criteria)
	if err != nil {
		return nil, err
	}
	f, err := export.Workbook(bundle)
	if err != nil {
		metrics.RecordExportError()
		return nil, err
	}
	metrics.RecordExport()
	return f, nil
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"started": false,
		"loaded":  false,
	}

	s.mu.RLock()
	started := s.started
	store := s.store
	s.mu.RUnlock()

	stats["started"] = started
	if store == nil || !store.Loaded() {
		return stats
	}

	table, err := store.Table(context.Background())
	if err != nil {
		return stats
	}
	stats["loaded"] = true
	stats["rows"] = len(table.Records)
	stats["skipped_rows"] = table.SkippedRows
	stats["races"] = len(table.Races)
	stats["age_categories"] = len(table.AgeCategories)
	stats["loaded_at"] = table.LoadedAt
	return stats
}
