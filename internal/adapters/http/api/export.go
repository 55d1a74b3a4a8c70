// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles workbook export requests.
type ExportHandler struct {
	deps     Dependencies
	filename string
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps Dependencies, filename string) *ExportHandler {
	if filename == "" {
		filename = "summaries.xlsx"
	}
	return &ExportHandler{deps: deps, filename: filename}
}

// HandleGetExport handles GET /api/export requests with criteria supplied
// as query parameters, streaming an Excel workbook of the summaries.
func (h *ExportHandler) HandleGetExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f, err := h.deps.ExportWorkbook(r.Context(), criteriaFromQuery(r))
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "export_failed", Wrap(op, err))
		return
	}
	defer func() { _ = f.Close() }()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	if err := f.Write(w); err != nil {
		// Headers are already out; nothing recoverable remains.
		return
	}
}
