// Package report renders tide days as plain text or JSON for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ngmaloney/tide-terminal/internal/models"
)

// Disclaimer is printed under every report.
const Disclaimer = "Approximate estimate from the lunar phase only. Not for navigation; consult official tide tables."

// NoExtremeMessage is shown when a day has no pronounced high or low.
func NoExtremeMessage(t models.TideType) string {
	return fmt.Sprintf("No pronounced %s tide this day", strings.ToLower(t.Name()))
}

// Day writes a human-readable report for one day.
func Day(w io.Writer, day models.TideDay) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Tide estimate for %s (%s)\n", day.Date, day.Date.Weekday())
	fmt.Fprintf(&b, "Lunar age:  %.1f days\n", day.LunarAge)
	fmt.Fprintf(&b, "Tide range: %s (%s)\n\n", day.Category, day.Category.Kanji())

	if len(day.Extremes) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Tide", "Time", "Height")
		for _, e := range day.Extremes {
			t.Row(e.Type.Name(), e.Time(), fmt.Sprintf("%.0f%%", e.Height))
		}
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	if len(day.Highs()) == 0 {
		b.WriteString(NoExtremeMessage(models.TideHigh) + "\n")
	}
	if len(day.Lows()) == 0 {
		b.WriteString(NoExtremeMessage(models.TideLow) + "\n")
	}

	fmt.Fprintf(&b, "\nFishing:    %s %s\n", day.Advice.Label, day.Advice.Stars())
	fmt.Fprintf(&b, "  %s\n\n", day.Advice.Description)
	b.WriteString(Disclaimer + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Calendar writes one row per day.
func Calendar(w io.Writer, days []models.TideDay) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Day", "Age", "Range", "Fishing", "Highs", "Lows")

	for _, day := range days {
		t.Row(
			day.Date.String(),
			day.Date.Weekday().String()[:3],
			fmt.Sprintf("%.1f", day.LunarAge),
			fmt.Sprintf("%s %s", day.Category.Kanji(), day.Category),
			day.Advice.Stars(),
			times(day.Highs()),
			times(day.Lows()),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), Disclaimer)
	return err
}

func times(events []models.TideExtreme) string {
	if len(events) == 0 {
		return "-"
	}
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = e.Time()
	}
	return strings.Join(parts, " ")
}

// DayDocument is the JSON form of a tide day.
type DayDocument struct {
	Date          string               `json:"date"`
	Weekday       string               `json:"weekday"`
	LunarAge      float64              `json:"lunar_age"`
	Category      models.RangeCategory `json:"category"`
	CategoryKanji string               `json:"category_kanji"`
	Extremes      []ExtremeDocument    `json:"extremes"`
	Advice        AdviceDocument       `json:"advice"`
	Disclaimer    string               `json:"disclaimer"`
}

// ExtremeDocument is the JSON form of a high or low tide.
type ExtremeDocument struct {
	Type   string  `json:"type"`
	Time   string  `json:"time"`
	Height float64 `json:"height"`
}

// AdviceDocument is the JSON form of the fishing advice.
type AdviceDocument struct {
	Label       string `json:"label"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

// NewDayDocument converts a tide day for JSON output.
func NewDayDocument(day models.TideDay) DayDocument {
	doc := DayDocument{
		Date:          day.Date.String(),
		Weekday:       day.Date.Weekday().String(),
		LunarAge:      round(day.LunarAge, 2),
		Category:      day.Category,
		CategoryKanji: day.Category.Kanji(),
		Extremes:      make([]ExtremeDocument, 0, len(day.Extremes)),
		Advice: AdviceDocument{
			Label:       day.Advice.Label,
			Rating:      day.Advice.Rating,
			Description: day.Advice.Description,
		},
		Disclaimer: Disclaimer,
	}
	for _, e := range day.Extremes {
		doc.Extremes = append(doc.Extremes, ExtremeDocument{
			Type:   strings.ToLower(e.Type.Name()),
			Time:   e.Time(),
			Height: round(e.Height, 1),
		})
	}
	return doc
}

// DayJSON writes one day as indented JSON.
func DayJSON(w io.Writer, day models.TideDay) error {
	return writeJSON(w, NewDayDocument(day))
}

// CalendarJSON writes several days as a JSON array.
func CalendarJSON(w io.Writer, days []models.TideDay) error {
	docs := make([]DayDocument, len(days))
	for i, d := range days {
		docs[i] = NewDayDocument(d)
	}
	return writeJSON(w, docs)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
