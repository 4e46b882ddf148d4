// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pulpito/internal/domain/identity"
	"pulpito/internal/domain/model"
	"pulpito/internal/domain/schedule"
)

// RosterDependencies defines the interface for roster view operations.
type RosterDependencies interface {
	SetQuery(ctx context.Context, query string)
	View(ctx context.Context) model.Roster
	Remove(ctx context.Context, key string) error
}

// RosterHandler handles roster view and speaker removal requests.
type RosterHandler struct {
	deps     RosterDependencies
	maxLimit int
	// now is swappable so tests can pin "today".
	now func() time.Time
}

// NewRosterHandler creates a new roster handler. maxLimit caps the
// optional limit parameter; zero disables the cap.
func NewRosterHandler(deps RosterDependencies, maxLimit int) *RosterHandler {
	return &RosterHandler{deps: deps, maxLimit: maxLimit, now: time.Now}
}

// rosterEntry is one row of the displayed view. WeeksSince is derived
// at render time from "today" and never stored.
type rosterEntry struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	WeeksSince int    `json:"weeks_since"`
}

// HandleGetRoster handles GET /roster[?query=...][&limit=N] requests.
//
// Passing a query parameter (even an empty one) replaces the active
// session filter; omitting it reuses whatever filter is in effect.
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_roster"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	if r.URL.Query().Has("query") {
		h.deps.SetQuery(r.Context(), r.URL.Query().Get("query"))
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if h.maxLimit > 0 && n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}

	view := h.deps.View(r.Context())
	if limit > 0 && limit < len(view) {
		view = view[:limit]
	}

	today := model.DateOf(h.now())
	entries := make([]rosterEntry, len(view))
	for i, rec := range view {
		entries[i] = rosterEntry{
			Name:       rec.Name,
			Date:       rec.Date.String(),
			WeeksSince: schedule.WeeksSince(rec.Date, today),
		}
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleDeleteSpeaker handles DELETE /roster/{name} requests. The name
// segment is matched by canonical key, so any diacritic or case
// variant of the stored spelling addresses the same record.
func (h *RosterHandler) HandleDeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_speaker"
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/roster/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if err := h.deps.Remove(r.Context(), identity.Key(name)); err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
