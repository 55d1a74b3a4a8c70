// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// FiltersHandler handles filter-option discovery requests.
type FiltersHandler struct {
	deps Dependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps Dependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

// HandleGetFilters handles GET /api/filters requests: the distinct race
// and age-category values present in the dataset plus the fixed bin order.
func (h *FiltersHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_filters"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	opts, err := h.deps.FilterOptions(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset_unavailable", WrapKind(op, ErrUnavailable, err))
		return
	}
	writeJSON(w, http.StatusOK, opts)
}
