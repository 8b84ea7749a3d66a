package tide

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ngmaloney/tide-terminal/internal/models"
)

const minutesPerDay = 24 * 60

// Method selects how turning points are picked out of the sampled curve.
type Method string

const (
	// MethodThreshold keeps local maxima above HighThreshold and local
	// minima below LowThreshold.
	MethodThreshold Method = "threshold"
	// MethodProminence keeps every local extreme that stands at least
	// MinProminence above (or below) its surrounding curve.
	MethodProminence Method = "prominence"
)

// DetectorParams tunes extreme detection. The thresholds and merge window are
// empirical; DefaultParams holds the tuned values.
type DetectorParams struct {
	Method        Method
	StepMinutes   int
	HighThreshold float64
	LowThreshold  float64
	MergeWindow   time.Duration
	MinProminence float64
}

// DefaultParams returns the standard detector settings.
func DefaultParams() DetectorParams {
	return DetectorParams{
		Method:        MethodThreshold,
		StepMinutes:   1,
		HighThreshold: 55,
		LowThreshold:  45,
		MergeWindow:   2 * time.Hour,
		MinProminence: 10,
	}
}

// Validate reports settings that cannot produce a sensible curve scan.
func (p DetectorParams) Validate() error {
	var errs []error
	switch p.Method {
	case MethodThreshold, MethodProminence:
	default:
		errs = append(errs, fmt.Errorf("unknown detection method %q", p.Method))
	}
	if p.StepMinutes < 1 || p.StepMinutes > 60 {
		errs = append(errs, fmt.Errorf("step of %d minutes is outside 1-60", p.StepMinutes))
	}
	if p.LowThreshold >= p.HighThreshold {
		errs = append(errs, fmt.Errorf("low threshold %.1f must be below high threshold %.1f", p.LowThreshold, p.HighThreshold))
	}
	if p.MergeWindow < 0 {
		errs = append(errs, fmt.Errorf("negative merge window %s", p.MergeWindow))
	}
	if p.MinProminence < 0 {
		errs = append(errs, fmt.Errorf("negative minimum prominence %.1f", p.MinProminence))
	}
	return errors.Join(errs...)
}

// Detector finds the high and low tides of a day.
type Detector struct {
	params DetectorParams
}

// NewDetector creates a detector with the given settings.
func NewDetector(params DetectorParams) *Detector {
	return &Detector{params: params}
}

// Params returns the detector settings.
func (d *Detector) Params() DetectorParams {
	return d.params
}

var defaultDetector = NewDetector(DefaultParams())

// FindExtrema returns the day's highs and lows in chronological order using
// the default detector. The result may lack a high or a low entirely on a
// flat neap day.
func FindExtrema(lunarAge float64) []models.TideExtreme {
	return defaultDetector.Find(lunarAge)
}

// Find samples the day's curve and returns its merged extremes in
// chronological order.
func (d *Detector) Find(lunarAge float64) []models.TideExtreme {
	samples := Curve(lunarAge, d.params.StepMinutes)

	var found []models.TideExtreme
	for i := 1; i < len(samples)-1; i++ {
		kind, ok := d.classifyPoint(samples, i)
		if !ok {
			continue
		}
		found = d.merge(found, newExtreme(kind, samples[i]))
	}
	return found
}

func (d *Detector) classifyPoint(samples []models.TideSample, i int) (models.TideType, bool) {
	prev, curr, next := samples[i-1].Height, samples[i].Height, samples[i+1].Height
	isPeak := curr > prev && curr > next
	isTrough := curr < prev && curr < next

	if d.params.Method == MethodProminence {
		switch {
		case isPeak && prominence(samples, i, 1) >= d.params.MinProminence:
			return models.TideHigh, true
		case isTrough && prominence(samples, i, -1) >= d.params.MinProminence:
			return models.TideLow, true
		}
		return "", false
	}

	switch {
	case isPeak && curr > d.params.HighThreshold:
		return models.TideHigh, true
	case isTrough && curr < d.params.LowThreshold:
		return models.TideLow, true
	}
	return "", false
}

// merge folds e into the kept list. A candidate of the same kind as the last
// kept extreme and within the merge window is the same physical event; only
// the more extreme of the two survives.
func (d *Detector) merge(kept []models.TideExtreme, e models.TideExtreme) []models.TideExtreme {
	if n := len(kept); n > 0 {
		last := kept[n-1]
		gap := time.Duration(e.Minutes()-last.Minutes()) * time.Minute
		if last.Type == e.Type && gap <= d.params.MergeWindow {
			if moreExtreme(e, last) {
				kept[n-1] = e
			}
			return kept
		}
	}
	return append(kept, e)
}

func moreExtreme(a, b models.TideExtreme) bool {
	if a.Type == models.TideHigh {
		return a.Height > b.Height
	}
	return a.Height < b.Height
}

func newExtreme(kind models.TideType, s models.TideSample) models.TideExtreme {
	total := int(math.Round(s.Hour * 60))
	return models.TideExtreme{
		Type:   kind,
		Hour:   total / 60,
		Minute: total % 60,
		Height: s.Height,
	}
}

// prominence measures how far sample i stands out from the curve around it.
// sign is 1 for peaks and -1 for troughs. The search on each side stops at
// the first sample that is more extreme than i, or at the edge of the day.
func prominence(samples []models.TideSample, i int, sign float64) float64 {
	peak := sign * samples[i].Height

	leftBase := peak
	for j := i - 1; j >= 0; j-- {
		v := sign * samples[j].Height
		if v > peak {
			break
		}
		leftBase = math.Min(leftBase, v)
	}

	rightBase := peak
	for j := i + 1; j < len(samples); j++ {
		v := sign * samples[j].Height
		if v > peak {
			break
		}
		rightBase = math.Min(rightBase, v)
	}

	return peak - math.Max(leftBase, rightBase)
}
