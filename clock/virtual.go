// Package clock implements the shared virtual clock and the projection of
// its instant into timezone-local wall-clock readings.
package clock

import "time"

// Virtual is the single authoritative display time. While live it tracks
// the real clock continuously; once paused it holds a frozen instant until
// the next explicit write. All operations are total.
type Virtual struct {
	base   time.Time
	synced time.Time // real time at which base was last anchored
	live   bool
	now    func() time.Time
}

// NewVirtual creates a live clock pinned to the current instant. The now
// function defaults to time.Now and exists so tests can drive the clock
// deterministically.
func NewVirtual(now func() time.Time) *Virtual {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Virtual{base: t, synced: t, live: true, now: now}
}

// IsLive reports whether the clock is tracking real time.
func (v *Virtual) IsLive() bool { return v.live }

// Current returns the displayed instant. While live this is recomputed
// from the wall clock rather than from the last tick, so it advances
// continuously between ticks.
func (v *Virtual) Current() time.Time {
	if v.live {
		return v.base.Add(v.now().Sub(v.synced))
	}
	return v.base
}

// Tick advances the clock by one timer period while live and is a no-op
// otherwise. The anchor moves with the base so Current stays continuous
// regardless of tick delivery jitter.
func (v *Virtual) Tick(elapsed time.Duration) {
	if !v.live {
		return
	}
	v.base = v.base.Add(elapsed)
	v.synced = v.synced.Add(elapsed)
}

// SetTimeOfDay pauses the clock and rewrites the time-of-day portion of
// the instant, preserving its date. The hour is clamped to [0,23] and the
// minute silently snaps to the nearest 15-minute grid value; seconds and
// smaller units are zeroed.
func (v *Virtual) SetTimeOfDay(hour, minute int) {
	cur := v.Current()
	hour = clampHour(hour)
	minute = snapMinute(minute)
	v.base = time.Date(cur.Year(), cur.Month(), cur.Day(), hour, minute, 0, 0, cur.Location())
	v.live = false
}

// SetDate pauses the clock and rewrites the date portion of the instant,
// preserving its time-of-day.
func (v *Virtual) SetDate(year int, month time.Month, day int) {
	cur := v.Current()
	v.base = time.Date(year, month, day, cur.Hour(), cur.Minute(), cur.Second(), cur.Nanosecond(), cur.Location())
	v.live = false
}

// Pause freezes the clock at its current instant. No-op while paused.
func (v *Virtual) Pause() {
	if !v.live {
		return
	}
	v.base = v.Current()
	v.live = false
}

// Resume snaps the clock back to the real current instant, discarding any
// frozen value, and re-enables advancement.
func (v *Virtual) Resume() {
	t := v.now()
	v.base = t
	v.synced = t
	v.live = true
}

func clampHour(h int) int {
	if h < 0 {
		return 0
	}
	if h > 23 {
		return 23
	}
	return h
}

// snapMinute rounds to the nearest of {0,15,30,45}, ties rounding up.
// Values past the last grid step stay within the hour.
func snapMinute(m int) int {
	if m < 0 {
		return 0
	}
	g := (m + 7) / 15 * 15
	if g > 45 {
		g = 45
	}
	return g
}
