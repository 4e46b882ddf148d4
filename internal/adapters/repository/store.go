// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"pulpito/internal/domain/model"
)

// Store provides read/write access to the current roster. Lookup is by
// canonical identity key (see internal/domain/identity); the stored
// order is insertion order and is preserved across updates.
type Store interface {
	// Find returns the record whose canonical key matches key.
	// Returns ErrNotFound if the speaker is unknown.
	Find(ctx context.Context, key string) (model.Record, error)

	// Upsert replaces the record with the same canonical key in place,
	// preserving its position, or appends when absent. Returns true
	// when a new record was appended.
	Upsert(ctx context.Context, rec model.Record) bool

	// Remove deletes the record with the given canonical key.
	// Returns ErrNotFound if the speaker is unknown.
	Remove(ctx context.Context, key string) error

	// Snapshot returns an ordered copy of the roster for read-only use.
	Snapshot(ctx context.Context) model.Roster

	// Count returns the number of speakers tracked.
	Count(ctx context.Context) int
}
