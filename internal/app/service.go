// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	"pulpito/internal/adapters/persistence"
	repository "pulpito/internal/adapters/repository"
	"pulpito/internal/domain/dedupe"
	"pulpito/internal/domain/model"
	"pulpito/internal/domain/reconcile"
	"pulpito/internal/domain/search"
	"pulpito/pkg/logger"
	"pulpito/pkg/metrics"
)

// Service owns the roster store and applies every mutation under a
// single lock. The reconciliation algorithms are not linearizable
// under concurrent mutation, so the lock is held across the whole
// reconcile-then-persist sequence, preserving the single-writer
// contract inside a multi-goroutine HTTP host.
type Service struct {
	mu sync.Mutex

	// Core components
	roster  repository.Store
	deduper dedupe.Deduper
	slot    persistence.Slot

	// Session view state: the query currently applied to the roster
	// view. Reset to the full roster after every reconciliation.
	activeQuery string

	// Configuration
	dataFile   string
	dedupeSize int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataFile sets the path of the JSON roster slot.
func WithDataFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataFile = path
		}
	}
}

// WithDedupeSize sets the size of the submission idempotency tracker.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithSlot overrides the persistence slot; used by tests.
func WithSlot(slot persistence.Slot) Option {
	return func(s *Service) {
		if slot != nil {
			s.slot = slot
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataFile:   "meeting-speakers.json",
		dedupeSize: 10_000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the persisted roster and initializes the components. A
// missing or unreadable slot is never fatal: the session starts with
// an empty roster and stays operable in memory.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.slot == nil {
		s.slot = persistence.NewJSONFile(s.dataFile)
	}

	initial, err := s.slot.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "roster slot unreadable; starting empty", logger.Error(err))
		initial = model.Roster{}
	}

	s.roster = repository.NewRosterStore(repository.WithInitial(initial))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))

	s.started = true
	s.logger.Info(ctx, "roster service started",
		logger.String("dataFile", s.dataFile),
		logger.Int("speakers", s.roster.Count(ctx)),
	)
	return nil
}

// Stop shuts the service down. The roster is already mirrored after
// every mutation, so there is nothing left to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// Submit reconciles one submitted duty date for the given names.
// Conflicts come back inside the outcome; they are expected input
// states, not errors. The active search filter is reset to the full
// roster afterwards.
func (s *Service) Submit(ctx context.Context, date model.Date, names []string) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := reconcile.Submission(ctx, s.roster, date, names)
	s.activeQuery = ""
	s.persist(ctx)

	metrics.RecordSubmission()
	metrics.RecordRecordsAdded(out.Added)
	metrics.RecordRecordsUpdated(out.Updated)
	metrics.RecordSubmissionConflicts(len(out.Conflicts))

	s.logger.Info(ctx, "submission reconciled",
		logger.String("date", date.String()),
		logger.Int("added", out.Added),
		logger.Int("updated", out.Updated),
		logger.Int("conflicts", len(out.Conflicts)),
	)
	return out
}

// BackupEquivalent reports whether the incoming roster is a multiset
// duplicate of the current one, in which case a merge would change
// nothing and needs no confirmation.
func (s *Service) BackupEquivalent(ctx context.Context, incoming model.Roster) bool {
	eq := reconcile.Equivalent(s.roster.Snapshot(ctx), incoming)
	if eq {
		metrics.RecordBackupUnchanged()
	}
	return eq
}

// MergeBackup folds a confirmed backup roster into the store and
// resets the active search filter.
func (s *Service) MergeBackup(ctx context.Context, incoming model.Roster) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := reconcile.MergeBackup(ctx, s.roster, incoming)
	s.activeQuery = ""
	s.persist(ctx)

	metrics.RecordBackupMerge()
	metrics.RecordRecordsAdded(out.Added)
	metrics.RecordRecordsUpdated(out.Updated)

	s.logger.Info(ctx, "backup merged",
		logger.Int("incoming", len(incoming)),
		logger.Int("added", out.Added),
		logger.Int("updated", out.Updated),
	)
	return out
}

// SetQuery replaces the active search filter.
func (s *Service) SetQuery(_ context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeQuery = query
}

// ActiveQuery returns the query currently applied to the view.
func (s *Service) ActiveQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeQuery
}

// View returns the roster filtered by the active query and sorted
// ascending by date. The sort is applied to the derived view only; the
// stored roster keeps insertion order.
func (s *Service) View(ctx context.Context) model.Roster {
	return search.SortByDate(search.Filter(s.roster.Snapshot(ctx), s.ActiveQuery()))
}

// Remove deletes the speaker with the given canonical key. Returns
// repository.ErrNotFound when the speaker is unknown; callers are
// expected to have confirmed destructive intent already.
func (s *Service) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.Remove(ctx, key); err != nil {
		return err
	}
	s.persist(ctx)
	metrics.RecordRemoval()
	return nil
}

// Snapshot exposes the roster as a read-only ordered copy for export.
func (s *Service) Snapshot(ctx context.Context) model.Roster {
	return s.roster.Snapshot(ctx)
}

// SeenAndRecord atomically checks whether a submission id was seen and
// records it if not. Returns true for duplicates.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordDuplicateSubmission()
	}
	metrics.UpdateDedupeSize(s.deduper.Size())
	return seen
}

// Unrecord forgets a submission id so the caller can retry it.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
	metrics.UpdateDedupeSize(s.deduper.Size())
}

// Size returns the number of submission ids currently tracked.
func (s *Service) Size() int {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":  s.started,
		"dataFile": s.dataFile,
	}
	if s.started {
		stats["speakers"] = s.roster.Count(ctx)
		stats["activeQuery"] = s.activeQuery
		stats["dedupeTracked"] = s.deduper.Size()
	}
	return stats
}

// persist mirrors the roster to the slot. Best-effort by contract: a
// failed write is logged and counted, and the in-memory roster remains
// authoritative for the rest of the session. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.slot.Save(ctx, s.roster.Snapshot(ctx)); err != nil {
		metrics.RecordPersistError()
		s.logger.Warn(ctx, "roster write-through failed; in-memory state remains authoritative",
			logger.Error(err),
		)
	}
}
