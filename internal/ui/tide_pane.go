package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/report"
	"github.com/ngmaloney/tide-terminal/internal/tide"
)

const chartHeight = 6

// chartWidth returns the curve width for the current terminal size
func (m Model) chartWidth() int {
	w := m.width - 6
	if w > 96 {
		w = 96
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderChart draws the day's tide curve with high/low markers and an hour axis
func (m Model) renderChart() string {
	width := m.chartWidth()
	step := (24*60 + width - 1) / width
	samples := tide.Curve(m.day.LunarAge, step)

	heights := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Height
	}

	sl := sparkline.New(len(heights), chartHeight,
		sparkline.WithMaxValue(100),
		sparkline.WithStyle(chartStyle))
	sl.PushAll(heights)
	sl.Draw()

	markers := []rune(strings.Repeat(" ", len(heights)))
	for _, e := range m.day.Extremes {
		col := e.Minutes() / step
		if col >= len(markers) {
			col = len(markers) - 1
		}
		if e.Type == models.TideHigh {
			markers[col] = '▲'
		} else {
			markers[col] = '▼'
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sl.View(),
		highStyle.Render(string(markers)),
		mutedStyle.Render(hourAxis(len(heights), step)),
	)
}

// hourAxis labels every sixth hour under a chart of the given width
func hourAxis(width, step int) string {
	axis := []rune(strings.Repeat(" ", width))
	for hour := 0; hour < 24; hour += 6 {
		label := fmt.Sprintf("%02d", hour)
		col := hour * 60 / step
		for i, r := range label {
			if col+i < len(axis) {
				axis[col+i] = r
			}
		}
	}
	return string(axis)
}

// renderExtremes lists the day's highs and lows
func (m Model) renderExtremes() string {
	var lines []string

	for _, e := range m.day.Extremes {
		style := lowStyle
		if e.Type == models.TideHigh {
			style = highStyle
		}
		lines = append(lines, fmt.Sprintf("  %s  %s  %3.0f%%",
			valueStyle.Render(e.Time()),
			style.Width(4).Render(e.Type.Name()),
			e.Height))
	}

	if len(m.day.Highs()) == 0 {
		lines = append(lines, mutedStyle.Render("  "+report.NoExtremeMessage(models.TideHigh)))
	}
	if len(m.day.Lows()) == 0 {
		lines = append(lines, mutedStyle.Render("  "+report.NoExtremeMessage(models.TideLow)))
	}

	return strings.Join(lines, "\n")
}

// renderAdvice renders the fishing rating and guidance text
func (m Model) renderAdvice() string {
	a := m.day.Advice
	width := m.chartWidth()
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s  %s", successStyle.Render(a.Stars()), valueStyle.Bold(true).Render(a.Label)),
		lipgloss.NewStyle().Width(width).Render(a.Description),
	)
}

// renderWeek renders the upcoming days as a strip of category badges
func (m Model) renderWeek() string {
	var cols []string
	for _, d := range m.week {
		label := d.Date.Weekday().String()[:3]
		if d.Date == m.date {
			label = titleStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center,
			label,
			mutedStyle.Render(fmt.Sprintf("%d/%d", int(d.Date.Month), d.Date.Day)),
			getCategoryStyle(d.Category).Render(d.Category.Kanji()),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(cols, " ")...)
}

// renderNextTide names the next high or low when viewing today
func (m Model) renderNextTide() string {
	if m.date != m.today {
		return ""
	}
	now := m.clock()
	e, ok := m.day.Next(now.Hour()*60 + now.Minute())
	if !ok {
		return mutedStyle.Render("No more turns of the tide today")
	}
	style := lowStyle
	if e.Type == models.TideHigh {
		style = highStyle
	}
	return fmt.Sprintf("Next: %s at %s (%.0f%%)", style.Render(e.Type.Name()), valueStyle.Render(e.Time()), e.Height)
}

// renderTripsOnDay lists saved trips that fall on the selected date
func (m Model) renderTripsOnDay() string {
	var names []string
	for _, p := range m.planned {
		if p.Trip.Date == m.date {
			names = append(names, p.Trip.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return successStyle.Render("🎣 Planned: " + strings.Join(names, ", "))
}

func interleave(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items)*2-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
