package clock

import (
	"fmt"
	"time"
)

// Day labels relative to the viewer's calendar date at the same instant.
const (
	Today       = "Today"
	NextDay     = "Next Day"
	PreviousDay = "Previous Day"
)

// Projection is the wall-clock reading of one instant in one zone.
type Projection struct {
	HourMinute string // 12-hour "3:04"
	Meridiem   string // "AM" or "PM"
	Abbrev     string // zone abbreviation at the instant, e.g. "JST"
	Offset     string // "UTC±HH:MM" at the instant
	DayLabel   string
}

// Project converts instant into loc's local representation and labels its
// calendar date relative to the same instant seen from viewer. Both
// locations must be non-nil; ids reaching this function come from the
// catalog, so a nil location is a programmer error.
func Project(instant time.Time, loc, viewer *time.Location) Projection {
	if loc == nil || viewer == nil {
		panic("clock: Project called with nil location")
	}

	t := instant.In(loc)
	abbrev, _ := t.Zone()

	p := Projection{
		HourMinute: t.Format("3:04"),
		Meridiem:   t.Format("PM"),
		Abbrev:     abbrev,
		Offset:     FormatOffset(t),
		DayLabel:   Today,
	}

	// Compare calendar dates of the same instant, not against real-world
	// today, so scrubbing shifts the labels with the viewer's date.
	zoned := t.Format("2006-01-02")
	local := instant.In(viewer).Format("2006-01-02")
	switch {
	case zoned > local:
		p.DayLabel = NextDay
	case zoned < local:
		p.DayLabel = PreviousDay
	}

	return p
}

// FormatOffset returns t's UTC offset in ±HH:MM form.
func FormatOffset(t time.Time) string {
	_, offset := t.Zone()

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60

	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
