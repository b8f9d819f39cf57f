package main

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mfeld/meridian/catalog"
	"github.com/mfeld/meridian/clock"
	"github.com/mfeld/meridian/meeting"
	"github.com/mfeld/meridian/solar"
)

// printZoneTable renders the one-shot, non-interactive zone table used by
// the --table/--time/--date flags.
func printZoneTable(w io.Writer, instant time.Time, viewer *time.Location, entries []catalog.Record, window meeting.Window) {
	in := window.Evaluate(instant, entries)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"City", "Zone", "Time", "Day", "Offset", "Business", "Sunrise", "Sunset"})

	for _, e := range entries {
		p := clock.Project(instant, e.Location(), viewer)

		business := "-"
		if in[e.Identity()] {
			business = "yes"
		}

		sunrise, sunset := "-", "-"
		if e.Coordinates != (catalog.Coordinates{}) {
			st := solar.Calculate(e.Coordinates.Lat, e.Coordinates.Lng, instant.In(e.Location()))
			sunrise = st.Sunrise.Format("3:04 PM")
			sunset = st.Sunset.Format("3:04 PM")
		}

		t.AppendRow(table.Row{
			e.City,
			e.ID,
			p.HourMinute + " " + p.Meridiem + " " + p.Abbrev,
			p.DayLabel,
			p.Offset,
			business,
			sunrise,
			sunset,
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
