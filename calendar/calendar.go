// Package calendar implements the month cursor and day grid shown above
// the clocks. The cursor is display-only state; picking a day is the
// caller's concern.
package calendar

import "time"

// Month is a calendar month cursor.
type Month struct {
	year  int
	month time.Month
}

// At returns the cursor for t's month.
func At(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// Advance moves the cursor by delta months and returns the new cursor;
// the receiver is unchanged.
func (m Month) Advance(delta int) Month {
	t := m.first().AddDate(0, delta, 0)
	return Month{year: t.Year(), month: t.Month()}
}

// Label returns the cursor formatted as "January 2006".
func (m Month) Label() string {
	return m.first().Format("January 2006")
}

// Year returns the cursor's year.
func (m Month) Year() int { return m.year }

// MonthOf returns the cursor's month.
func (m Month) MonthOf() time.Month { return m.month }

// Contains reports whether t falls in the cursor's month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.year && t.Month() == m.month
}

// Day is one cell of the month grid.
type Day struct {
	Date    time.Time
	InMonth bool
}

// Days returns the grid of day cells spanning full Sunday-to-Saturday
// weeks from the week containing the 1st through the week containing the
// last day of the month. The result is deterministic for a given cursor
// and its length is always a multiple of 7.
func (m Month) Days() []Day {
	first := m.first()
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, InMonth: m.Contains(d)})
	}
	return days
}

func (m Month) first() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether a and b fall on the same calendar date in their
// respective locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
