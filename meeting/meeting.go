// Package meeting flags which selected zones fall inside a shared
// business-hours window at a given instant.
package meeting

import (
	"time"

	"github.com/mfeld/meridian/catalog"
)

// Window is an inclusive range of local hours. Only the hour component of
// a time is compared, so with End 17 a local time of 17:59 still counts.
type Window struct {
	StartHour int
	EndHour   int
}

// Default is the conventional 9-to-17 business-hours window.
var Default = Window{StartHour: 9, EndHour: 17}

// Contains reports whether t's hour falls inside the window.
func (w Window) Contains(t time.Time) bool {
	h := t.Hour()
	return h >= w.StartHour && h <= w.EndHour
}

// InZone reports whether instant falls inside the window in loc's local
// time.
func (w Window) InZone(instant time.Time, loc *time.Location) bool {
	return w.Contains(instant.In(loc))
}

// Evaluate projects instant into each entry's zone and returns the set of
// display identities currently inside the window. Stateless; callers
// re-evaluate on every clock change.
func (w Window) Evaluate(instant time.Time, entries []catalog.Record) map[string]bool {
	in := make(map[string]bool, len(entries))
	for _, e := range entries {
		if w.InZone(instant, e.Location()) {
			in[e.Identity()] = true
		}
	}
	return in
}
