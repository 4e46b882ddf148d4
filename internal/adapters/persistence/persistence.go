// Package persistence mirrors the roster to an external slot.
//
// The slot is best-effort: the in-memory roster stays authoritative
// for the session whenever a write fails, and a missing or unreadable
// slot on load simply means starting with an empty roster.
package persistence

import (
	"context"

	"pulpito/internal/domain/model"
)

// Slot reads and writes the roster under a single named location.
type Slot interface {
	// Load reads the persisted roster. A missing slot is not an
	// error; it returns an empty roster.
	Load(ctx context.Context) (model.Roster, error)

	// Save writes the roster, replacing the previous contents.
	Save(ctx context.Context, roster model.Roster) error
}
