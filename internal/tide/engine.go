package tide

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/ngmaloney/tide-terminal/internal/models"
	"golang.org/x/sync/errgroup"
)

// maxMemoDays bounds the memo; it is cleared once full.
const maxMemoDays = 400

// ComputeDay builds the complete tide estimate for a date with the default
// detector.
func ComputeDay(date models.Date) models.TideDay {
	return computeDay(defaultDetector, date)
}

func computeDay(d *Detector, date models.Date) models.TideDay {
	age := MoonAge(date)
	category := Classify(age)
	return models.TideDay{
		Date:     date,
		LunarAge: age,
		Category: category,
		Extremes: d.Find(age),
		Advice:   Advise(category),
	}
}

// Engine computes tide days with a configured detector. It is safe for
// concurrent use.
type Engine struct {
	detector *Detector

	mu   sync.RWMutex
	memo map[models.Date]models.TideDay
}

// Option configures an Engine.
type Option func(*Engine)

// WithMemo caches computed days by date. Results are pure functions of the
// date, so the cache never goes stale.
func WithMemo() Option {
	return func(e *Engine) {
		e.memo = make(map[models.Date]models.TideDay)
	}
}

// NewEngine creates an engine around detector. A nil detector means the
// default settings.
func NewEngine(detector *Detector, opts ...Option) *Engine {
	if detector == nil {
		detector = defaultDetector
	}
	e := &Engine{detector: detector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Detector returns the engine's detector.
func (e *Engine) Detector() *Detector {
	return e.detector
}

// Day returns the tide estimate for date.
func (e *Engine) Day(date models.Date) models.TideDay {
	if e.memo == nil {
		return computeDay(e.detector, date)
	}

	e.mu.RLock()
	day, ok := e.memo[date]
	e.mu.RUnlock()
	if ok {
		day.Extremes = slices.Clone(day.Extremes)
		return day
	}

	day = computeDay(e.detector, date)

	e.mu.Lock()
	if len(e.memo) >= maxMemoDays {
		clear(e.memo)
	}
	e.memo[date] = day
	e.mu.Unlock()

	day.Extremes = slices.Clone(day.Extremes)
	return day
}

// Range computes n consecutive days starting at from, in date order.
func (e *Engine) Range(ctx context.Context, from models.Date, n int) ([]models.TideDay, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative day count %d", n)
	}

	days := make([]models.TideDay, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			days[i] = e.Day(from.AddDays(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing %d days from %s: %w", n, from, err)
	}
	return days, nil
}

// NextCategory finds the first date on or after from whose category is c,
// looking at most limit days ahead.
func (e *Engine) NextCategory(from models.Date, c models.RangeCategory, limit int) (models.Date, bool) {
	for i := 0; i <= limit; i++ {
		d := from.AddDays(i)
		if Classify(MoonAge(d)) == c {
			return d, true
		}
	}
	return models.Date{}, false
}
