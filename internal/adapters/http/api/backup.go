// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"pulpito/internal/domain/model"
)

// BackupDependencies defines the interface for backup merges.
type BackupDependencies interface {
	BackupEquivalent(ctx context.Context, incoming model.Roster) bool
	MergeBackup(ctx context.Context, incoming model.Roster) model.Outcome
}

// BackupHandler handles backup merge requests.
type BackupHandler struct {
	deps BackupDependencies
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(deps BackupDependencies) *BackupHandler {
	return &BackupHandler{deps: deps}
}

// backupResponse reports the merge result for a single summary
// notification.
type backupResponse struct {
	Status  string `json:"status"`
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
}

// HandlePostBackup handles POST /backup requests.
//
// A backup that is multiset-equivalent to the current roster is
// acknowledged as unchanged without requiring confirmation. Otherwise
// the merge only runs when the caller passes confirm=true; the first,
// unconfirmed call acts as the wouldChange predicate the UI prompts
// on.
func (h *BackupHandler) HandlePostBackup(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_backup"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var incoming model.Roster
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if h.deps.BackupEquivalent(r.Context(), incoming) {
		writeJSON(w, http.StatusOK, backupResponse{Status: "unchanged"})
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		writeJSON(w, http.StatusOK, backupResponse{Status: "confirmation_required"})
		return
	}

	out := h.deps.MergeBackup(r.Context(), incoming)
	writeJSON(w, http.StatusOK, backupResponse{
		Status:  "merged",
		Added:   out.Added,
		Updated: out.Updated,
	})
}
