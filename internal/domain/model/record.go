// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// dateLayout is the wire and storage form of a calendar date.
const dateLayout = "2006-01-02"

// Date is a calendar date with day precision. It marshals to and from
// ISO "YYYY-MM-DD" strings, matching the persistence slot and backup
// file formats.
type Date struct {
	t time.Time
}

// ParseDate parses an ISO calendar date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// DateOf truncates a time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String renders the date in ISO form.
func (d Date) String() string { return d.t.Format(dateLayout) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// DaysUntil returns the signed number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// MarshalJSON renders the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses an ISO date string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record represents one speaker and the date of their most recent duty.
// Name holds the display form, capitalized per word.
type Record struct {
	Name string `json:"name"`
	Date Date   `json:"date"`
}

// Roster is an insertion-ordered sequence of records. Reconcilers
// guarantee that no two records share a canonical identity key.
type Roster []Record

// Conflict reports a submission whose date did not advance a speaker's
// stored date. The stored record is left untouched.
type Conflict struct {
	Name      string `json:"name"`
	Attempted Date   `json:"attempted_date"`
	Stored    Date   `json:"stored_date"`
}

// Outcome summarizes a single reconciliation call. It is transient and
// never persisted; the notification layer renders it for the user.
type Outcome struct {
	Added     int        `json:"added"`
	Updated   int        `json:"updated"`
	Conflicts []Conflict `json:"conflicts"`
}
