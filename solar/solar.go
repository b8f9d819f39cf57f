// Package solar computes approximate sunrise and sunset times from
// geographic coordinates, used for the day/night marker on clock cards.
package solar

import (
	"math"
	"time"
)

// Times holds the computed sun times for a single calendar date.
type Times struct {
	Sunrise   time.Time
	Sunset    time.Time
	DayLength time.Duration
}

// Daytime reports whether t falls between sunrise and sunset, inclusive.
func (s Times) Daytime(t time.Time) bool {
	return !t.Before(s.Sunrise) && !t.After(s.Sunset)
}

// Calculate returns approximate sun times for the given coordinates on
// date's calendar day, expressed in date's location. The formula is the
// classic declination/hour-angle approximation; it is accurate to a few
// minutes, which is enough for an indicator.
func Calculate(lat, lng float64, date time.Time) Times {
	yearStart := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	dayOfYear := int(date.Sub(yearStart).Hours()/24) + 1

	declination := 23.45 * math.Sin(rad(360.0*float64(284+dayOfYear)/365.0))

	// cos of the hour angle leaves [-1,1] during polar day or night;
	// clamping collapses the day to 24h or 0h respectively.
	cosH := -math.Tan(rad(lat)) * math.Tan(rad(declination))
	cosH = math.Max(-1, math.Min(1, cosH))
	hourAngle := deg(math.Acos(cosH))

	// Solar noon in the zone's own clock: mean solar time shifted by the
	// zone's UTC offset.
	_, offset := date.Zone()
	solarNoon := 12.0 - lng/15.0 + float64(offset)/3600.0
	sunriseHour := solarNoon - hourAngle/15.0
	sunsetHour := solarNoon + hourAngle/15.0

	sunrise := atHour(date, sunriseHour)
	sunset := atHour(date, sunsetHour)

	return Times{
		Sunrise:   sunrise,
		Sunset:    sunset,
		DayLength: sunset.Sub(sunrise),
	}
}

// atHour places a fractional hour on date's calendar day.
func atHour(date time.Time, hour float64) time.Time {
	h := int(math.Floor(hour))
	m := int(math.Floor((hour - math.Floor(hour)) * 60))
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
