// Package ledger derives the general ledger, trial balance and income
// statement from the five entry streams. Every report is recomputed from a
// read of the current collections; the reporter keeps nothing between calls.
package ledger

import (
	"time"

	"github.com/cleared-dev/bursar/internal/model"
)

// DateFormat is the calendar-day layout used for bounds and periods.
const DateFormat = model.DateLayout

// Query scopes a report. A nil bound is open; an empty Account matches all.
type Query struct {
	Account string
	Start   *time.Time
	End     *time.Time
}

// day truncates t to its calendar day, dropping any time of day and zone.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// inRange reports whether t falls within [start, end], both inclusive and
// compared by calendar day.
func inRange(t time.Time, start, end *time.Time) bool {
	d := day(t)
	if start != nil && d.Before(day(*start)) {
		return false
	}
	if end != nil && d.After(day(*end)) {
		return false
	}
	return true
}

// Period renders bounds as "2024-01-01..2024-01-31", using "*" for an open
// bound and "all" when both are open.
func Period(start, end *time.Time) string {
	if start == nil && end == nil {
		return "all"
	}
	from, to := "*", "*"
	if start != nil {
		from = start.Format(DateFormat)
	}
	if end != nil {
		to = end.Format(DateFormat)
	}
	return from + ".." + to
}
