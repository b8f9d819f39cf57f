package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives a Virtual deterministically.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock(t *testing.T) (*Virtual, *fakeClock) {
	t.Helper()
	fc := &fakeClock{t: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)}
	return NewVirtual(fc.Now), fc
}

func TestLiveAdvancement(t *testing.T) {
	v, fc := newTestClock(t)
	require.True(t, v.IsLive())

	start := v.Current()
	fc.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), v.Current())

	fc.Advance(3 * time.Hour)
	assert.Equal(t, start.Add(90*time.Second+3*time.Hour), v.Current())
}

func TestTickKeepsContinuity(t *testing.T) {
	v, fc := newTestClock(t)
	start := v.Current()

	fc.Advance(time.Second)
	v.Tick(time.Second)
	assert.Equal(t, start.Add(time.Second), v.Current())

	// A tick while paused is a no-op.
	v.SetTimeOfDay(10, 0)
	frozen := v.Current()
	fc.Advance(time.Minute)
	v.Tick(time.Second)
	assert.Equal(t, frozen, v.Current())
}

func TestSetTimeOfDayFreezes(t *testing.T) {
	v, fc := newTestClock(t)

	v.SetTimeOfDay(9, 0)
	require.False(t, v.IsLive())

	frozen := v.Current()
	assert.Equal(t, 9, frozen.Hour())
	assert.Equal(t, 0, frozen.Minute())
	assert.Equal(t, 0, frozen.Second())

	fc.Advance(2 * time.Hour)
	assert.Equal(t, frozen, v.Current(), "paused clock must not advance")
}

func TestSetTimeOfDayPreservesDate(t *testing.T) {
	v, _ := newTestClock(t)

	v.SetTimeOfDay(23, 45)
	cur := v.Current()
	assert.Equal(t, 2024, cur.Year())
	assert.Equal(t, time.March, cur.Month())
	assert.Equal(t, 10, cur.Day())
	assert.Equal(t, 23, cur.Hour())
	assert.Equal(t, 45, cur.Minute())
}

func TestSetTimeOfDaySnapsAndClamps(t *testing.T) {
	tests := []struct {
		name       string
		hour, min  int
		wantHour   int
		wantMinute int
	}{
		{"on grid", 9, 0, 9, 0},
		{"snaps down", 9, 7, 9, 0},
		{"snaps up", 9, 8, 9, 15},
		{"ties round up", 9, 23, 9, 30},
		{"stays within the hour", 9, 53, 9, 45},
		{"hour clamped high", 25, 0, 23, 0},
		{"hour clamped low", -3, 0, 0, 0},
		{"minute clamped low", 9, -10, 9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestClock(t)
			v.SetTimeOfDay(tt.hour, tt.min)
			cur := v.Current()
			assert.Equal(t, tt.wantHour, cur.Hour())
			assert.Equal(t, tt.wantMinute, cur.Minute())
		})
	}
}

func TestSetDatePreservesTimeOfDay(t *testing.T) {
	v, _ := newTestClock(t)

	v.SetDate(2025, time.December, 24)
	require.False(t, v.IsLive())

	cur := v.Current()
	assert.Equal(t, 2025, cur.Year())
	assert.Equal(t, time.December, cur.Month())
	assert.Equal(t, 24, cur.Day())
	assert.Equal(t, 14, cur.Hour())
	assert.Equal(t, 30, cur.Minute())
}

func TestResumeSnapsToNow(t *testing.T) {
	v, fc := newTestClock(t)

	v.SetDate(2020, time.January, 1)
	fc.Advance(10 * time.Minute)

	v.Resume()
	require.True(t, v.IsLive())
	assert.Equal(t, fc.Now(), v.Current(), "resume discards the frozen value")

	fc.Advance(time.Second)
	assert.Equal(t, fc.Now(), v.Current(), "resume re-enables advancement")
}

func TestPauseFreezesAtCurrentInstant(t *testing.T) {
	v, fc := newTestClock(t)

	fc.Advance(42 * time.Second)
	want := v.Current()

	v.Pause()
	require.False(t, v.IsLive())
	assert.Equal(t, want, v.Current())

	// Idempotent.
	fc.Advance(time.Hour)
	v.Pause()
	assert.Equal(t, want, v.Current())
}
