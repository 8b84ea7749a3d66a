package tide

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// meanSwing is the mean high minus the mean low of a day.
func meanSwing(t *testing.T, extremes []models.TideExtreme) float64 {
	t.Helper()
	day := models.TideDay{Extremes: extremes}
	highs, lows := day.Highs(), day.Lows()
	require.NotEmpty(t, highs)
	require.NotEmpty(t, lows)

	mean := func(events []models.TideExtreme) float64 {
		var sum float64
		for _, e := range events {
			sum += e.Height
		}
		return sum / float64(len(events))
	}
	return mean(highs) - mean(lows)
}

func TestFindExtrema_SpringTide(t *testing.T) {
	extremes := FindExtrema(0)
	day := models.TideDay{Extremes: extremes}

	var bigHigh, deepLow bool
	for _, e := range day.Highs() {
		bigHigh = bigHigh || e.Height > 70
	}
	for _, e := range day.Lows() {
		deepLow = deepLow || e.Height < 30
	}
	assert.True(t, bigHigh, "expected a high above 70, got %+v", extremes)
	assert.True(t, deepLow, "expected a low below 30, got %+v", extremes)
}

// The day as a whole swings less at neap. Single extremes need not: the
// diurnal term lifts the late high at age 7 (about 84) above the spring high
// at age 0 (about 82).
func TestFindExtrema_NeapSwingsLessThanSpring(t *testing.T) {
	spring := meanSwing(t, FindExtrema(0))
	neap := meanSwing(t, FindExtrema(7))
	assert.Less(t, neap, spring)
	assert.Greater(t, spring-neap, 10.0)
}

func TestFindExtrema_OrderedAndMerged(t *testing.T) {
	for age := 0.0; age < SynodicMonth; age += 0.25 {
		extremes := FindExtrema(age)
		for i, e := range extremes {
			assert.GreaterOrEqual(t, e.Hour, 0)
			assert.Less(t, e.Hour, 24)
			assert.GreaterOrEqual(t, e.Minute, 0)
			assert.Less(t, e.Minute, 60)

			switch e.Type {
			case models.TideHigh:
				assert.Greater(t, e.Height, 55.0, "age %.2f high at %s", age, e.Time())
			case models.TideLow:
				assert.Less(t, e.Height, 45.0, "age %.2f low at %s", age, e.Time())
			default:
				t.Fatalf("age %.2f: unexpected type %q", age, e.Type)
			}

			if i == 0 {
				continue
			}
			prev := extremes[i-1]
			require.Less(t, prev.Minutes(), e.Minutes(), "age %.2f not chronological", age)
			if prev.Type == e.Type {
				assert.Greater(t, e.Minutes()-prev.Minutes(), 120,
					"age %.2f: %s %s and %s within two hours", age, e.Type.Name(), prev.Time(), e.Time())
			}
		}
	}
}

func TestFindExtrema_TypicalCount(t *testing.T) {
	for age := 0.0; age < SynodicMonth; age += 0.5 {
		n := len(FindExtrema(age))
		assert.LessOrEqual(t, n, 5, "age %.1f", age)
	}
}

func TestFindExtrema_FormatsTime(t *testing.T) {
	for _, e := range FindExtrema(0) {
		assert.Regexp(t, `^\d{2}:\d{2}$`, e.Time())
	}
}

func TestDetector_StrictThresholdsYieldEmptyKinds(t *testing.T) {
	params := DefaultParams()
	params.HighThreshold = 99
	params.LowThreshold = 1

	extremes := NewDetector(params).Find(7)
	assert.Empty(t, extremes)

	day := models.TideDay{Extremes: extremes}
	assert.Empty(t, day.Highs())
	assert.Empty(t, day.Lows())
}

func TestDetector_Merge(t *testing.T) {
	d := NewDetector(DefaultParams())
	at := func(kind models.TideType, hour, minute int, height float64) models.TideExtreme {
		return models.TideExtreme{Type: kind, Hour: hour, Minute: minute, Height: height}
	}

	var kept []models.TideExtreme
	kept = d.merge(kept, at(models.TideHigh, 10, 0, 60))
	kept = d.merge(kept, at(models.TideHigh, 11, 0, 65))
	kept = d.merge(kept, at(models.TideHigh, 12, 30, 62))
	kept = d.merge(kept, at(models.TideLow, 13, 0, 40))
	kept = d.merge(kept, at(models.TideLow, 14, 0, 42))
	kept = d.merge(kept, at(models.TideLow, 16, 30, 30))

	want := []models.TideExtreme{
		at(models.TideHigh, 11, 0, 65),
		at(models.TideLow, 13, 0, 40),
		at(models.TideLow, 16, 30, 30),
	}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestDetector_ZeroWindowKeepsEveryCandidate(t *testing.T) {
	params := DefaultParams()
	params.MergeWindow = 0
	d := NewDetector(params)

	kept := d.merge(nil, models.TideExtreme{Type: models.TideHigh, Hour: 3, Minute: 0, Height: 60})
	kept = d.merge(kept, models.TideExtreme{Type: models.TideHigh, Hour: 3, Minute: 1, Height: 61})
	assert.Len(t, kept, 2)
}

func TestDetector_FractionalWindow(t *testing.T) {
	high := func(minute int) models.TideExtreme {
		return models.TideExtreme{Type: models.TideHigh, Hour: 3, Minute: minute, Height: 60 + float64(minute)}
	}

	tests := []struct {
		window time.Duration
		gap    int
		want   int
	}{
		{90 * time.Second, 1, 1},
		{90 * time.Second, 2, 2},
		{119*time.Minute + 59*time.Second, 119, 1},
		{119*time.Minute + 59*time.Second, 120, 2},
		{time.Duration(1.999 * float64(time.Hour)), 119, 1},
		{time.Duration(1.999 * float64(time.Hour)), 120, 2},
	}

	for _, tt := range tests {
		params := DefaultParams()
		params.MergeWindow = tt.window
		d := NewDetector(params)

		kept := d.merge(nil, high(0))
		kept = d.merge(kept, high(tt.gap))
		assert.Len(t, kept, tt.want, "window %s, gap %d min", tt.window, tt.gap)
	}
}

func TestDetector_CoarseStepAgreesWithFine(t *testing.T) {
	params := DefaultParams()
	params.StepMinutes = 5
	coarse := NewDetector(params).Find(0)
	fine := FindExtrema(0)

	require.Len(t, coarse, len(fine))
	for i := range fine {
		assert.Equal(t, fine[i].Type, coarse[i].Type)
		assert.InDelta(t, fine[i].Minutes(), coarse[i].Minutes(), 5)
		assert.InDelta(t, fine[i].Height, coarse[i].Height, 0.5)
	}
}

func TestDetector_Prominence(t *testing.T) {
	params := DefaultParams()
	params.Method = MethodProminence
	d := NewDetector(params)

	extremes := d.Find(0)
	day := models.TideDay{Extremes: extremes}
	require.NotEmpty(t, day.Highs())
	require.NotEmpty(t, day.Lows())

	var maxHigh, minLow float64 = 0, 100
	for _, e := range day.Highs() {
		maxHigh = math.Max(maxHigh, e.Height)
	}
	for _, e := range day.Lows() {
		minLow = math.Min(minLow, e.Height)
	}
	assert.Greater(t, maxHigh, 70.0)
	assert.Less(t, minLow, 30.0)

	for i := 1; i < len(extremes); i++ {
		assert.Less(t, extremes[i-1].Minutes(), extremes[i].Minutes())
	}
}

func TestProminence(t *testing.T) {
	heights := []float64{10, 30, 20, 50, 40, 45, 0}
	samples := make([]models.TideSample, len(heights))
	for i, h := range heights {
		samples[i] = models.TideSample{Hour: float64(i), Height: h}
	}

	// 30 is bounded by 50 to the right, so its base is max(10, 20).
	assert.InDelta(t, 10, prominence(samples, 1, 1), 1e-9)
	// 50 is the highest point; its base is max(10, 0).
	assert.InDelta(t, 40, prominence(samples, 3, 1), 1e-9)
	// The trough at 40 sits between 50 and 45.
	assert.InDelta(t, 5, prominence(samples, 4, -1), 1e-9)
}

func TestDetectorParams_Validate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	tests := []struct {
		name   string
		modify func(p *DetectorParams)
	}{
		{"unknown method", func(p *DetectorParams) { p.Method = "fourier" }},
		{"zero step", func(p *DetectorParams) { p.StepMinutes = 0 }},
		{"huge step", func(p *DetectorParams) { p.StepMinutes = 90 }},
		{"inverted thresholds", func(p *DetectorParams) { p.LowThreshold = 60 }},
		{"negative window", func(p *DetectorParams) { p.MergeWindow = -time.Minute }},
		{"negative prominence", func(p *DetectorParams) { p.MinProminence = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			assert.Error(t, p.Validate())
		})
	}
}
