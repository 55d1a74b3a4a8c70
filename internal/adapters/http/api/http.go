// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/okian/riskboard/internal/domain/model"
	"github.com/okian/riskboard/internal/domain/summary"
	"github.com/okian/riskboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// FilterOptions exposes the widget-building data for the renderer.
	FilterOptions(ctx context.Context) (types.FilterOptions, error)

	// Summaries recomputes all three summaries for one criteria change.
	Summaries(ctx context.Context, criteria model.FilterCriteria) (summary.Bundle, error)

	// Individual summary operations.
	Trend(ctx context.Context, criteria model.FilterCriteria) ([]summary.TrendRow, error)
	Scatter(ctx context.Context, criteria model.FilterCriteria) ([]summary.ScatterPoint, error)
	ErrorRates(ctx context.Context) []summary.ErrorRate

	// ExportWorkbook renders the criteria's summaries as a workbook.
	ExportWorkbook(ctx context.Context, criteria model.FilterCriteria) (*excelize.File, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	filtersHandler   *FiltersHandler
	summariesHandler *SummariesHandler
	exportHandler    *ExportHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, exportFilename string) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		filtersHandler:   NewFiltersHandler(deps),
		summariesHandler: NewSummariesHandler(deps),
		exportHandler:    NewExportHandler(deps, exportFilename),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/api/filters", MetricsMiddleware(s.filtersHandler.HandleGetFilters, "filters"))
	mux.HandleFunc("/api/summaries", MetricsMiddleware(s.summariesHandler.HandlePostSummaries, "summaries"))
	mux.HandleFunc("/api/summaries/trend", MetricsMiddleware(s.summariesHandler.HandleGetTrend, "trend"))
	mux.HandleFunc("/api/summaries/scatter", MetricsMiddleware(s.summariesHandler.HandleGetScatter, "scatter"))
	mux.HandleFunc("/api/summaries/error-rates", MetricsMiddleware(s.summariesHandler.HandleGetErrorRates, "error_rates"))
	mux.HandleFunc("/api/export", MetricsMiddleware(s.exportHandler.HandleGetExport, "export"))
}

// criteriaRequest mirrors the FilterCriteria schema for POST /api/summaries.
type criteriaRequest struct {
	Races       []string `json:"races"`
	AgeCategory string   `json:"age_category"`
}

func (c criteriaRequest) toModel() model.FilterCriteria {
	races := make([]string, 0, len(c.Races))
	for _, r := range c.Races {
		if r = strings.TrimSpace(r); r != "" {
			races = append(races, r)
		}
	}
	age := strings.TrimSpace(c.AgeCategory)
	if age == "" {
		age = model.AgeCategoryAll
	}
	return model.FilterCriteria{Races: races, AgeCategory: age}
}

// criteriaFromQuery builds criteria from repeated races params and an
// optional age_category, e.g. ?races=Caucasian&races=Other&age_category=All.
func criteriaFromQuery(r *http.Request) model.FilterCriteria {
	q := r.URL.Query()
	return criteriaRequest{
		Races:       q["races"],
		AgeCategory: q.Get("age_category"),
	}.toModel()
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// Error helpers keep handler call sites terse while preserving errors.Is.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
