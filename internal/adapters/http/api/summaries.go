// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// SummariesHandler handles summary recomputation requests.
type SummariesHandler struct {
	deps Dependencies
}

// NewSummariesHandler creates a new summaries handler.
func NewSummariesHandler(deps Dependencies) *SummariesHandler {
	return &SummariesHandler{deps: deps}
}

// HandlePostSummaries handles POST /api/summaries requests. The body is a
// FilterCriteria; the response carries all three summary structures.
func (h *SummariesHandler) HandlePostSummaries(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_summaries"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req criteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	bundle, err := h.deps.Summaries(r.Context(), req.toModel())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset_unavailable", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

// HandleGetTrend handles GET /api/summaries/trend requests with criteria
// supplied as query parameters.
func (h *SummariesHandler) HandleGetTrend(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_trend"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.Trend(r.Context(), criteriaFromQuery(r))
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset_unavailable", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleGetScatter handles GET /api/summaries/scatter requests.
func (h *SummariesHandler) HandleGetScatter(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_scatter"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	points, err := h.deps.Scatter(r.Context(), criteriaFromQuery(r))
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset_unavailable", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// HandleGetErrorRates handles GET /api/summaries/error-rates requests.
// The reference table ignores criteria by contract.
func (h *SummariesHandler) HandleGetErrorRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ErrorRates(r.Context()))
}
