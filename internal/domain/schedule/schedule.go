// Package schedule computes display-time values derived from duty dates.
package schedule

import "pulpito/internal/domain/model"

// daysPerWeek is fixed; calendar-week boundaries are not considered.
const daysPerWeek = 7

// WeeksSince returns the number of whole weeks elapsed from date to
// today, negative when date lies in the future. Pure and recomputed on
// every render since "today" moves.
func WeeksSince(date, today model.Date) int {
	days := date.DaysUntil(today)
	if days < 0 {
		// Integer division truncates toward zero; floor instead so a
		// future date three days out reports -1 weeks, not 0.
		return -((-days + daysPerWeek - 1) / daysPerWeek)
	}
	return days / daysPerWeek
}
