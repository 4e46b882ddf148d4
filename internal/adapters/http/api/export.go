// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pulpito/internal/adapters/export"
	"pulpito/internal/domain/model"
	"pulpito/pkg/metrics"
)

// ExportDependencies defines the interface for export operations.
type ExportDependencies interface {
	Snapshot(ctx context.Context) model.Roster
}

// ExportHandler serves downloadable roster snapshots.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleGetExport handles GET /export?format=json|xlsx requests. The
// snapshot is read-only; exporting never mutates the roster.
func (h *ExportHandler) HandleGetExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	roster := h.deps.Snapshot(r.Context())
	filename := fmt.Sprintf("oradores_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".json"))
		if err := export.WriteJSON(w, roster); err != nil {
			writeError(w, http.StatusInternalServerError, "export_failed", WrapKind(op, ErrExport, err))
			return
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
		if err := export.WriteXLSX(w, roster); err != nil {
			writeError(w, http.StatusInternalServerError, "export_failed", WrapKind(op, ErrExport, err))
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	metrics.RecordExport(format)
}
