package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"github.com/ngmaloney/tide-terminal/internal/models"
)

// tripItem wraps a PlannedTrip for use in a list
type tripItem struct {
	planned models.PlannedTrip
	today   models.Date
}

// FilterValue implements list.Item
func (t tripItem) FilterValue() string {
	return t.planned.Trip.Name
}

// Title implements list.DefaultItem
func (t tripItem) Title() string {
	return fmt.Sprintf("%s - %s", t.planned.Trip.Name, t.planned.Trip.Date)
}

// Description implements list.DefaultItem
func (t tripItem) Description() string {
	day := t.planned.Day
	return fmt.Sprintf("%s %s  %s  %s",
		day.Category, day.Category.Kanji(), day.Advice.Stars(), relativeDay(t.planned.Trip.Date, t.today))
}

// relativeDay describes date relative to today, e.g. "3 days from now"
func relativeDay(date, today models.Date) string {
	if date == today {
		return "today"
	}
	return humanize.RelTime(date.Time(time.UTC), today.Time(time.UTC), "ago", "from now")
}

// createTripList creates a list.Model from planned trips
func createTripList(planned []models.PlannedTrip, today models.Date, width, height int) list.Model {
	items := make([]list.Item, len(planned))
	for i, p := range planned {
		items[i] = tripItem{planned: p, today: today}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Saved Trips"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
