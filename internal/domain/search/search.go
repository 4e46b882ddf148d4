// Package search filters the roster by free-text queries.
package search

import (
	"sort"
	"strings"

	"pulpito/internal/domain/identity"
	"pulpito/internal/domain/model"
)

// Normalize lowers the string and strips diacritics. It shares the
// identity package's stripping but not its title-casing.
func Normalize(s string) string {
	return identity.StripDiacritics(strings.ToLower(s))
}

// Filter returns the records whose normalized name contains every
// token of the normalized query as a substring. An empty or
// whitespace-only query returns the roster unchanged, in stored order.
//
// The query is split on single spaces and empty tokens are kept; an
// empty token is a substring of everything and therefore matches every
// record.
func Filter(roster model.Roster, query string) model.Roster {
	if strings.TrimSpace(query) == "" {
		out := make(model.Roster, len(roster))
		copy(out, roster)
		return out
	}
	tokens := strings.Split(Normalize(query), " ")
	out := make(model.Roster, 0, len(roster))
	for _, rec := range roster {
		name := Normalize(rec.Name)
		all := true
		for _, tok := range tokens {
			if !strings.Contains(name, tok) {
				all = false
				break
			}
		}
		if all {
			out = append(out, rec)
		}
	}
	return out
}

// SortByDate sorts a roster ascending by date, in place. The sort is
// stable so records sharing a date keep their relative order. Applied
// to derived views only, never to the stored roster.
func SortByDate(roster model.Roster) model.Roster {
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Date.Before(roster[j].Date)
	})
	return roster
}
