// Package reconcile merges incoming duty dates into the roster store.
//
// Two reconcilers share the same supersede rule — an incoming date
// replaces a stored one only when strictly later — but differ in how
// they treat a date that does not advance. Live submissions report a
// conflict for the caller to surface; backup merges skip silently,
// being best-effort catch-up from bulk data. The asymmetry is
// intentional and reflects the two trust levels of the input.
package reconcile

import (
	"context"

	"pulpito/internal/adapters/repository"
	"pulpito/internal/domain/identity"
	"pulpito/internal/domain/model"
)

// Submission merges a submitted duty date for up to a handful of
// speakers into the store.
//
// Each name is normalized to its display form first; names that
// normalize to nothing are dropped. Unknown speakers are inserted with
// the submitted date. For known speakers the date is updated only when
// strictly later than the stored one; otherwise the stored record is
// left untouched and the attempt is reported as a conflict. Conflicts
// are expected, recoverable input states, never errors: the submission
// still applies to the other names.
func Submission(ctx context.Context, store repository.Store, date model.Date, names []string) model.Outcome {
	var out model.Outcome
	for _, raw := range names {
		name := identity.Display(raw)
		if name == "" {
			continue
		}

		stored, err := store.Find(ctx, identity.Key(name))
		if err != nil {
			store.Upsert(ctx, model.Record{Name: name, Date: date})
			out.Added++
			continue
		}

		if date.After(stored.Date) {
			stored.Date = date
			store.Upsert(ctx, stored)
			out.Updated++
			continue
		}

		out.Conflicts = append(out.Conflicts, model.Conflict{
			Name:      stored.Name,
			Attempted: date,
			Stored:    stored.Date,
		})
	}
	return out
}
