package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/tide-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorSecondary = lipgloss.Color("#87CEEB") // Sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for errors
	colorWarning   = lipgloss.Color("#FFD93D") // Yellow
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	highStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	lowStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	chartStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1)
)

// getCategoryStyle returns the badge style for a tide-range category
func getCategoryStyle(c models.RangeCategory) lipgloss.Style {
	switch c {
	case models.CategorySpring:
		return badgeStyle.Background(colorSuccess)
	case models.CategoryMid:
		return badgeStyle.Background(colorPrimary)
	case models.CategoryNeap:
		return badgeStyle.Background(colorWarning)
	case models.CategoryLong, models.CategoryYoung:
		return badgeStyle.Background(colorMuted).Foreground(lipgloss.Color("#FFFFFF"))
	default:
		return badgeStyle
	}
}

// renderBadge renders a category as a colored "Spring 大潮" badge
func renderBadge(c models.RangeCategory) string {
	return getCategoryStyle(c).Render(c.String() + " " + c.Kanji())
}
