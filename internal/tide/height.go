package tide

import (
	"math"

	"github.com/ngmaloney/tide-terminal/internal/models"
)

const (
	semiDiurnalPeriod = 12.42 // hours between successive highs
	lunarDay          = 23.93 // hours

	minHeight = 2.0
	maxHeight = 98.0
)

// Height returns the relative tide height (2-98) at the fractional hour of a
// day whose lunar age is lunarAge.
func Height(hour, lunarAge float64) float64 {
	phase := lunarAge / SynodicMonth * 2 * math.Pi
	hourRad := hour / semiDiurnalPeriod * 2 * math.Pi

	// Amplitude peaks at new moon and is smallest at full moon.
	amplitude := 0.7 + 0.3*math.Cos(phase)
	mainTide := 40 * amplitude * math.Cos(hourRad+phase/2)
	subTide := 8 * math.Cos(hour/lunarDay*2*math.Pi+phase*0.7)

	return clamp(50+mainTide+subTide, minHeight, maxHeight)
}

// Curve samples Height across the day every step minutes.
func Curve(lunarAge float64, stepMinutes int) []models.TideSample {
	if stepMinutes <= 0 {
		stepMinutes = 1
	}
	n := (minutesPerDay + stepMinutes - 1) / stepMinutes
	samples := make([]models.TideSample, n)
	for i := range samples {
		hour := float64(i*stepMinutes) / 60
		samples[i] = models.TideSample{Hour: hour, Height: Height(hour, lunarAge)}
	}
	return samples
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
