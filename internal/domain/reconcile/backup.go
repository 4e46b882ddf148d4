package reconcile

import (
	"context"

	"pulpito/internal/adapters/repository"
	"pulpito/internal/domain/identity"
	"pulpito/internal/domain/model"
)

// rosterKey is the exact-equality shape used for multiset comparison.
type rosterKey struct {
	name string
	date string
}

// Equivalent reports whether two rosters hold the same records as
// multisets: order-independent, exact name and calendar-date equality.
// Callers use it to short-circuit backup merges that would change
// nothing.
func Equivalent(a, b model.Roster) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[rosterKey]int, len(a))
	for _, rec := range a {
		counts[rosterKey{rec.Name, rec.Date.String()}]++
	}
	for _, rec := range b {
		k := rosterKey{rec.Name, rec.Date.String()}
		counts[k]--
		if counts[k] < 0 {
			return false
		}
	}
	return true
}

// MergeBackup folds an externally supplied roster into the store,
// walking incoming records in their given order.
//
// Unknown speakers are inserted and counted as added; known speakers
// are updated and counted only when the incoming date is strictly
// later. An incoming date that does not advance the stored one is
// skipped without being reported: backup merges are best-effort
// catch-up, not strict validation, so unlike Submission they produce
// no conflicts.
func MergeBackup(ctx context.Context, store repository.Store, incoming model.Roster) model.Outcome {
	var out model.Outcome
	for _, rec := range incoming {
		stored, err := store.Find(ctx, identity.Key(rec.Name))
		if err != nil {
			store.Upsert(ctx, rec)
			out.Added++
			continue
		}
		if rec.Date.After(stored.Date) {
			stored.Date = rec.Date
			store.Upsert(ctx, stored)
			out.Updated++
		}
	}
	return out
}
