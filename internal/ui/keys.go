package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	PrevDay    key.Binding
	NextDay    key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding
	Today      key.Binding
	NextSpring key.Binding
	AddTrip    key.Binding
	Trips      key.Binding
	Select     key.Binding
	Delete     key.Binding
	Back       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PrevDay:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		NextWeek:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		NextSpring: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next spring tide")),
		AddTrip:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "save trip")),
		Trips:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "trips")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go to date")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Back:       key.NewBinding(key.WithKeys("esc", "p"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// dayHelp is the help line for the day view
func (k keyMap) dayHelp() string {
	bindings := []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Today, k.NextSpring, k.AddTrip, k.Trips, k.Quit}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		parts[i] = h.Key + ": " + h.Desc
	}
	return strings.Join(parts, " • ")
}
