package repository

import (
	"context"
	"sync"

	"pulpito/internal/domain/identity"
	"pulpito/internal/domain/model"
	"pulpito/pkg/metrics"
)

// RosterStore is the slice-backed, in-memory Store implementation.
//
// The roster is small (tens to low hundreds of speakers), so lookups
// are a linear scan over canonical keys. A mutex enforces the
// single-writer contract when the store is hosted behind an HTTP
// server: the reconciliation algorithms are not linearizable under
// concurrent mutation, so every mutation holds the lock end to end.
type RosterStore struct {
	mu      sync.RWMutex
	records model.Roster
}

// Option applies a configuration option to the RosterStore.
type Option func(*RosterStore)

// WithInitial seeds the store with a previously persisted roster. The
// slice is copied; later mutations never alias the caller's data.
func WithInitial(roster model.Roster) Option {
	return func(s *RosterStore) {
		s.records = make(model.Roster, len(roster))
		copy(s.records, roster)
	}
}

// NewRosterStore creates an empty roster store.
func NewRosterStore(opts ...Option) *RosterStore {
	s := &RosterStore{}
	for _, opt := range opts {
		opt(s)
	}
	metrics.UpdateRosterSize(len(s.records))
	return s
}

// Find returns the record whose canonical key matches key.
func (s *RosterStore) Find(_ context.Context, key string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(key); i >= 0 {
		return s.records[i], nil
	}
	return model.Record{}, ErrNotFound
}

// Upsert replaces in place or appends. Returns true on append.
func (s *RosterStore) Upsert(_ context.Context, rec model.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(identity.Key(rec.Name)); i >= 0 {
		s.records[i] = rec
		return false
	}
	s.records = append(s.records, rec)
	metrics.UpdateRosterSize(len(s.records))
	return true
}

// Remove deletes the record with the given canonical key.
func (s *RosterStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return ErrNotFound
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	metrics.UpdateRosterSize(len(s.records))
	return nil
}

// Snapshot returns an ordered copy of the roster.
func (s *RosterStore) Snapshot(_ context.Context) model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(model.Roster, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of speakers tracked.
func (s *RosterStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// index returns the position of the record matching key, or -1.
// Callers must hold the lock.
func (s *RosterStore) index(key string) int {
	for i, rec := range s.records {
		if identity.Key(rec.Name) == key {
			return i
		}
	}
	return -1
}
