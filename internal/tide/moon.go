// Package tide estimates a day's tide curve, extremes and tide-range category
// from the lunar phase alone.
//
// The model is a synthetic, location-agnostic approximation meant for planning
// and illustration. It is not derived from harmonic constituents or an
// ephemeris and must not be used in place of official tide tables.
package tide

import (
	"math"
	"time"

	"github.com/ngmaloney/tide-terminal/internal/models"
)

// SynodicMonth is the length of the lunar phase cycle in days.
const SynodicMonth = 29.53

// referenceNewMoon anchors the phase cycle. 2000-01-06 was a new moon.
var referenceNewMoon = models.NewDate(2000, time.January, 6)

// MoonAge returns the lunar age of date in days, in [0, SynodicMonth).
func MoonAge(date models.Date) float64 {
	elapsed := float64(date.DaysSince(referenceNewMoon))
	age := math.Mod(math.Mod(elapsed, SynodicMonth)+SynodicMonth, SynodicMonth)
	if age >= SynodicMonth {
		return 0
	}
	return age
}
