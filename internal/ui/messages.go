package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/trips"
)

// Message types for trip storage operations

// tripsFetchedMsg is sent when saved trips have been loaded
type tripsFetchedMsg struct {
	planned []models.PlannedTrip
}

// tripSavedMsg is sent when a trip has been saved
type tripSavedMsg struct {
	trip *models.Trip
	err  error
}

// tripDeletedMsg is sent when a trip has been deleted
type tripDeletedMsg struct {
	name string
	err  error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

func fetchTrips(s *trips.Service) tea.Cmd {
	return func() tea.Msg {
		planned, err := s.Plan()
		if err != nil {
			return errMsg{err: fmt.Errorf("loading trips: %w", err)}
		}
		return tripsFetchedMsg{planned: planned}
	}
}

func saveTrip(s *trips.Service, name string, date models.Date) tea.Cmd {
	return func() tea.Msg {
		trip, err := s.Add(strings.TrimSpace(name), date, "")
		return tripSavedMsg{trip: trip, err: err}
	}
}

func deleteTrip(s *trips.Service, name string) tea.Cmd {
	return func() tea.Msg {
		err := s.Delete(name)
		return tripDeletedMsg{name: name, err: err}
	}
}
