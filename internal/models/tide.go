package models

import "fmt"

// TideType represents whether a tide is high or low
type TideType string

const (
	TideHigh TideType = "H"
	TideLow  TideType = "L"
)

// Name returns the display name of the tide type
func (t TideType) Name() string {
	if t == TideHigh {
		return "High"
	}
	return "Low"
}

// TideSample is a relative tide height (0-100) at an hour of the day
type TideSample struct {
	Hour   float64 // fractional hour in [0, 24)
	Height float64
}

// TideExtreme represents a single high or low turning point of the day
type TideExtreme struct {
	Type   TideType
	Hour   int
	Minute int
	Height float64 // relative index, not feet or meters
}

// Time returns the zero-padded HH:MM time of day
func (e TideExtreme) Time() string {
	return fmt.Sprintf("%02d:%02d", e.Hour, e.Minute)
}

// Minutes returns the minutes elapsed since midnight
func (e TideExtreme) Minutes() int {
	return e.Hour*60 + e.Minute
}

// TideDay is the full tide estimate for one calendar date
type TideDay struct {
	Date     Date
	LunarAge float64
	Category RangeCategory
	Extremes []TideExtreme // Ordered by time
	Advice   FishingAdvice
}

// Highs returns only the high tides of the day
func (td *TideDay) Highs() []TideExtreme {
	return td.ofType(TideHigh)
}

// Lows returns only the low tides of the day
func (td *TideDay) Lows() []TideExtreme {
	return td.ofType(TideLow)
}

// Next returns the first extreme at or after the given minute of the day
func (td *TideDay) Next(minuteOfDay int) (TideExtreme, bool) {
	for _, e := range td.Extremes {
		if e.Minutes() >= minuteOfDay {
			return e, true
		}
	}
	return TideExtreme{}, false
}

func (td *TideDay) ofType(t TideType) []TideExtreme {
	var events []TideExtreme
	for _, e := range td.Extremes {
		if e.Type == t {
			events = append(events, e)
		}
	}
	return events
}
