// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"pulpito/internal/domain/dedupe"
	"pulpito/internal/domain/model"
)

// SubmissionDependencies defines the interface for submission handling.
type SubmissionDependencies interface {
	dedupe.Deduper
	Submit(ctx context.Context, date model.Date, names []string) model.Outcome
}

// SubmissionsHandler handles submission requests.
type SubmissionsHandler struct {
	deps        SubmissionDependencies
	maxSpeakers int
}

// NewSubmissionsHandler creates a new submissions handler.
func NewSubmissionsHandler(deps SubmissionDependencies, maxSpeakers int) *SubmissionsHandler {
	return &SubmissionsHandler{deps: deps, maxSpeakers: maxSpeakers}
}

// submissionResponse carries the reconciliation outcome back to the
// notification layer. Conflicts are reported, not failed.
type submissionResponse struct {
	Status    string           `json:"status"`
	Duplicate bool             `json:"duplicate"`
	Added     int              `json:"added"`
	Updated   int              `json:"updated"`
	Conflicts []model.Conflict `json:"conflicts,omitempty"`
}

// HandlePostSubmission handles POST /submissions requests.
func (h *SubmissionsHandler) HandlePostSubmission(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_submission"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.maxSpeakers); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency: a retried submission id is acknowledged without
	// touching the roster.
	if req.SubmissionID != "" && h.deps.SeenAndRecord(r.Context(), req.SubmissionID) {
		writeJSON(w, http.StatusOK, submissionResponse{Status: "duplicate", Duplicate: true})
		return
	}

	names := make([]string, 0, len(req.Speakers))
	for _, sp := range req.Speakers {
		names = append(names, sp.Name)
	}

	out := h.deps.Submit(r.Context(), date, names)
	writeJSON(w, http.StatusOK, submissionResponse{
		Status:    "reconciled",
		Added:     out.Added,
		Updated:   out.Updated,
		Conflicts: out.Conflicts,
	})
}
