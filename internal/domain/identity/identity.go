// Package identity canonicalizes speaker names for matching and storage.
//
// Two forms are derived from user input: a canonical key used only for
// equality and lookup, and a display form used for storage and
// rendering. "JOÃO" and "joão" share the key "joao" and both store as
// "João".
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "é"
// compares equal to "e". Recomposition keeps keys in a stable form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes Unicode combining diacritical marks from s.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on malformed input; fall back to the
		// original string so matching degrades instead of breaking.
		return s
	}
	return out
}

// Key returns the canonical comparison key for a name: diacritics
// stripped, case folded. Never used for display.
func Key(name string) string {
	return strings.ToLower(StripDiacritics(name))
}

// Display normalizes a user-entered name for storage: the whole string
// is lower-cased, then the first rune of each space-separated token is
// upper-cased. Tokens are split and rejoined on single spaces; interior
// whitespace runs are deliberately not collapsed.
func Display(name string) string {
	parts := strings.Split(strings.ToLower(name), " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
