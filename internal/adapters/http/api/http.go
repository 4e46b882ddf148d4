// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"pulpito/internal/adapters/repository"
	"pulpito/internal/domain/dedupe"
	"pulpito/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	dedupe.Deduper

	// Submit reconciles one submission; conflicts come back inside
	// the outcome, never as an error.
	Submit(ctx context.Context, date model.Date, names []string) model.Outcome

	// BackupEquivalent reports whether merging incoming would be a
	// no-op; MergeBackup applies a confirmed merge.
	BackupEquivalent(ctx context.Context, incoming model.Roster) bool
	MergeBackup(ctx context.Context, incoming model.Roster) model.Outcome

	// View operations over the roster.
	SetQuery(ctx context.Context, query string)
	View(ctx context.Context) model.Roster
	Remove(ctx context.Context, key string) error
	Snapshot(ctx context.Context) model.Roster
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	submissionsHandler *SubmissionsHandler
	backupHandler      *BackupHandler
	rosterHandler      *RosterHandler
	exportHandler      *ExportHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxSpeakers, maxRosterLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		submissionsHandler: NewSubmissionsHandler(deps, maxSpeakers),
		backupHandler:      NewBackupHandler(deps),
		rosterHandler:      NewRosterHandler(deps, maxRosterLimit),
		exportHandler:      NewExportHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/submissions", MetricsMiddleware(s.submissionsHandler.HandlePostSubmission, "submissions"))
	mux.HandleFunc("/backup", MetricsMiddleware(s.backupHandler.HandlePostBackup, "backup"))
	mux.HandleFunc("/roster", MetricsMiddleware(s.rosterHandler.HandleGetRoster, "roster"))
	mux.HandleFunc("/roster/", MetricsMiddleware(s.rosterHandler.HandleDeleteSpeaker, "roster_speaker"))
	mux.HandleFunc("/export", MetricsMiddleware(s.exportHandler.HandleGetExport, "export"))
}

// namePattern is the shape the form layer accepts: letters and spaces
// only. The engine itself never re-validates names.
var namePattern = regexp.MustCompile(`^[\p{L} ]+$`)

// submissionRequest mirrors the submission form payload.
type submissionRequest struct {
	SubmissionID string `json:"submission_id,omitempty"`
	Date         string `json:"date"`
	Speakers     []struct {
		Name string `json:"name"`
	} `json:"speakers"`
}

func (s submissionRequest) validate(maxSpeakers int) error {
	if strings.TrimSpace(s.Date) == "" {
		return errors.New("missing date")
	}
	if _, err := model.ParseDate(s.Date); err != nil {
		return errors.New("invalid date; must be YYYY-MM-DD")
	}
	if len(s.Speakers) < 1 || len(s.Speakers) > maxSpeakers {
		return fmt.Errorf("speakers must contain between 1 and %d entries", maxSpeakers)
	}
	for _, sp := range s.Speakers {
		if strings.TrimSpace(sp.Name) == "" {
			return errors.New("missing speaker name")
		}
		if !namePattern.MatchString(sp.Name) {
			return errors.New("speaker name must contain letters and spaces only")
		}
	}
	return nil
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

// isNotFound translates upstream lookup misses to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
