package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/report"
	"github.com/ngmaloney/tide-terminal/internal/tide"
	"github.com/ngmaloney/tide-terminal/internal/trips"
	"go.uber.org/zap"
)

// AppState represents the current state of the application
type AppState int

const (
	StateDay     AppState = iota // Tide view for the selected date
	StateTrips                   // List of saved trips
	StateAddTrip                 // Naming a new trip for the selected date
	StateError                   // Error state
)

// springSearchDays bounds the "next spring tide" search; one cycle always has one.
const springSearchDays = 31

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error
	status string // one-line feedback under the day view

	engine *tide.Engine
	trips  *trips.Service // nil when storage is unavailable
	logger *zap.Logger
	keys   keyMap
	clock  func() time.Time

	// The selected date is plain state; the tide day is recomputed whenever it changes.
	today    models.Date
	date     models.Date
	day      models.TideDay
	week     []models.TideDay
	weekDays int

	nameInput textinput.Model
	tripList  list.Model
	planned   []models.PlannedTrip
}

// NewModel creates a new application model showing start
func NewModel(engine *tide.Engine, svc *trips.Service, logger *zap.Logger, start models.Date, weekDays int) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if weekDays < 1 {
		weekDays = 7
	}

	ti := textinput.New()
	ti.Placeholder = "Trip name (e.g. Harbor dawn)"
	ti.CharLimit = 60
	ti.Width = 40

	m := Model{
		state:     StateDay,
		engine:    engine,
		trips:     svc,
		logger:    logger,
		keys:      newKeyMap(),
		clock:     time.Now,
		today:     models.Today(),
		weekDays:  weekDays,
		nameInput: ti,
	}
	m.setDate(start)
	return m
}

// setDate selects a date and recomputes its tide day and the week strip
func (m *Model) setDate(d models.Date) {
	m.date = d
	m.day = m.engine.Day(d)
	m.week = make([]models.TideDay, 0, m.weekDays)
	for i := 0; i < m.weekDays; i++ {
		m.week = append(m.week, m.engine.Day(d.AddDays(i)))
	}
	m.logger.Debug("date selected",
		zap.Stringer("date", d),
		zap.Float64("lunar_age", m.day.LunarAge),
		zap.Stringer("category", m.day.Category),
		zap.Int("extremes", len(m.day.Extremes)))
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.trips == nil {
		return nil
	}
	return fetchTrips(m.trips)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateTrips {
			m.tripList.SetSize(msg.Width-4, msg.Height-6)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.logger.Warn("trip storage failed", zap.Error(msg.err))
		m.err = msg.err
		m.state = StateError
		return m, nil

	case tripsFetchedMsg:
		m.planned = msg.planned
		if m.state == StateTrips {
			m.tripList = createTripList(m.planned, m.today, m.width-4, m.height-6)
		}
		return m, nil

	case tripSavedMsg:
		m.state = StateDay
		if msg.err != nil {
			m.logger.Warn("saving trip failed", zap.Error(msg.err))
			m.status = fmt.Sprintf("Could not save trip: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Saved trip %q for %s", msg.trip.Name, msg.trip.Date)
		return m, fetchTrips(m.trips)

	case tripDeletedMsg:
		if msg.err != nil {
			m.logger.Warn("deleting trip failed", zap.Error(msg.err))
			m.status = fmt.Sprintf("Could not delete trip: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted trip %q", msg.name)
		return m, fetchTrips(m.trips)
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if key.Matches(keyMsg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateDay:
			return m.handleDayKeys(keyMsg)

		case StateAddTrip:
			return m.handleAddTrip(keyMsg)

		case StateTrips:
			return m.handleTripList(keyMsg)

		case StateError:
			// Any key returns to the day view (except quit keys)
			if key.Matches(keyMsg, m.keys.Quit) {
				return m, tea.Quit
			}
			m.state = StateDay
			m.err = nil
			return m, nil
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateAddTrip:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case StateTrips:
		m.tripList, cmd = m.tripList.Update(msg)
	}

	return m, cmd
}

// handleDayKeys handles date navigation in the day view
func (m Model) handleDayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevDay):
		m.setDate(m.date.AddDays(-1))
	case key.Matches(msg, m.keys.NextDay):
		m.setDate(m.date.AddDays(1))
	case key.Matches(msg, m.keys.PrevWeek):
		m.setDate(m.date.AddDays(-7))
	case key.Matches(msg, m.keys.NextWeek):
		m.setDate(m.date.AddDays(7))
	case key.Matches(msg, m.keys.Today):
		m.setDate(m.today)
	case key.Matches(msg, m.keys.NextSpring):
		if d, ok := m.engine.NextCategory(m.date.AddDays(1), models.CategorySpring, springSearchDays); ok {
			m.setDate(d)
		}
	case key.Matches(msg, m.keys.AddTrip):
		if m.trips == nil {
			m.status = "Trip storage is unavailable"
			return m, nil
		}
		m.state = StateAddTrip
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Trips):
		if m.trips == nil {
			m.status = "Trip storage is unavailable"
			return m, nil
		}
		m.state = StateTrips
		m.tripList = createTripList(m.planned, m.today, m.width-4, m.height-6)
		return m, fetchTrips(m.trips)
	default:
		return m, nil
	}
	m.status = ""
	return m, nil
}

// handleAddTrip handles keyboard input while naming a trip
func (m Model) handleAddTrip(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateDay
		m.nameInput.Blur()
		return m, nil
	case tea.KeyEnter:
		name := m.nameInput.Value()
		if name == "" {
			return m, nil
		}
		m.nameInput.Blur()
		return m, saveTrip(m.trips, name, m.date)
	}

	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleTripList handles keyboard input in the trip list
func (m Model) handleTripList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.state = StateDay
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.tripList.SelectedItem().(tripItem); ok {
			m.setDate(item.planned.Trip.Date)
			m.state = StateDay
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.tripList.SelectedItem().(tripItem); ok {
			return m, deleteTrip(m.trips, item.planned.Trip.Name)
		}
		return m, nil
	}

	m.tripList, cmd = m.tripList.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateDay:
		return m.viewDay()
	case StateAddTrip:
		return m.viewAddTrip()
	case StateTrips:
		return m.viewTrips()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewDay renders the tide day - simple vertical layout
func (m Model) viewDay() string {
	var sections []string

	dateLine := m.date.Time(time.UTC).Format("Monday, Jan 2 2006")
	if m.date == m.today {
		dateLine += mutedStyle.Render("  (today)")
	}
	sections = append(sections,
		titleStyle.Render("🌊 Tide Terminal"),
		valueStyle.Bold(true).Render(dateLine),
		fmt.Sprintf("%s  %s",
			renderBadge(m.day.Category),
			mutedStyle.Render(fmt.Sprintf("lunar age %.1f days", m.day.LunarAge))),
	)

	if next := m.renderNextTide(); next != "" {
		sections = append(sections, next)
	}

	if onDay := m.renderTripsOnDay(); onDay != "" {
		sections = append(sections, onDay)
	}

	sections = append(sections,
		sectionHeaderStyle.Render("TIDE CURVE"),
		m.renderChart(),
		sectionHeaderStyle.Render("HIGHS & LOWS"),
		m.renderExtremes(),
		sectionHeaderStyle.Render("FISHING"),
		m.renderAdvice(),
		sectionHeaderStyle.Render("THIS WEEK"),
		m.renderWeek(),
		"",
		mutedStyle.Render(report.Disclaimer),
	)

	if m.status != "" {
		sections = append(sections, "", labelStyle.Render(m.status))
	}

	help := helpStyle.Render(m.keys.dayHelp())
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewAddTrip renders the trip name prompt
func (m Model) viewAddTrip() string {
	title := titleStyle.Render("🎣 Save Trip")
	subtitle := mutedStyle.Render(fmt.Sprintf("%s - %s %s",
		m.date, m.day.Category, m.day.Category.Kanji()))

	inputBox := sectionBoxStyle.
		Width(48).
		Render(m.nameInput.View())

	help := helpStyle.Render("Enter: Save • Esc: Cancel")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", inputBox, "", help)
}

// viewTrips renders the saved trip list
func (m Model) viewTrips() string {
	help := helpStyle.Render("↑/↓: Navigate • Enter: Go to date • D: Delete • Esc: Back • Q: Quit")

	var sections []string
	if len(m.planned) == 0 {
		sections = append(sections,
			titleStyle.Render("Saved Trips"),
			"",
			mutedStyle.Render("No saved trips yet. Press A on any day to save one."))
	} else {
		sections = append(sections, m.tripList.View())
	}
	if m.status != "" {
		sections = append(sections, labelStyle.Render(m.status))
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	err := m.err
	if err == nil {
		err = errors.New("an unknown error occurred")
	}

	help := helpStyle.Render("Press any key to return • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", err.Error(), "", help)
}
