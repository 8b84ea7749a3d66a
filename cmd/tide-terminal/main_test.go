package main

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ngmaloney/tide-terminal/internal/config"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig saves a config that keeps the database and logs in a temp dir
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(dir, "trips.db")
	cfg.Logging.Level = "error"
	cfg.Logging.File = filepath.Join(dir, "tide.log")
	cfg.CalendarDays = 5

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.Save(path))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("2025-11-27")
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2025, time.November, 27), d)

	for _, s := range []string{"", "today", " Today "} {
		d, err := parseDateFlag(s)
		require.NoError(t, err)
		assert.Equal(t, models.Today(), d, "input %q", s)
	}

	_, err = parseDateFlag("27/11/2025")
	assert.Error(t, err)
}

func TestDayCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, cfgPath, "day", "--date", "2025-11-27")
	require.NoError(t, err)
	assert.Contains(t, out, "Tide estimate for 2025-11-27 (Thursday)")
	assert.Contains(t, out, "Lunar age:")
	assert.Contains(t, out, report.Disclaimer)
}

func TestDayCommandJSON(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, cfgPath, "day", "--date", "2025-11-27", "--json")
	require.NoError(t, err)

	var doc report.DayDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2025-11-27", doc.Date)
	assert.Equal(t, "Thursday", doc.Weekday)
	assert.Equal(t, doc.Category.Kanji(), doc.CategoryKanji)
	assert.GreaterOrEqual(t, doc.Advice.Rating, 1)
	assert.LessOrEqual(t, doc.Advice.Rating, 5)
}

func TestDayCommandBadDate(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "day", "--date", "not-a-date")
	assert.Error(t, err)
}

func TestCalendarCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	t.Run("days from config", func(t *testing.T) {
		out, err := run(t, cfgPath, "calendar", "--from", "2025-01-01", "--json")
		require.NoError(t, err)

		var docs []report.DayDocument
		require.NoError(t, json.Unmarshal([]byte(out), &docs))
		require.Len(t, docs, 5)
		assert.Equal(t, "2025-01-01", docs[0].Date)
		assert.Equal(t, "2025-01-05", docs[4].Date)
	})

	t.Run("explicit days", func(t *testing.T) {
		out, err := run(t, cfgPath, "calendar", "--from", "2025-01-01", "--days", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "2025-01-01")
		assert.Contains(t, out, "2025-01-03")
		assert.NotContains(t, out, "2025-01-04")
	})

	t.Run("only one category", func(t *testing.T) {
		out, err := run(t, cfgPath, "calendar", "--from", "2025-01-01", "--days", "60", "--only", "spring", "--json")
		require.NoError(t, err)

		var docs []report.DayDocument
		require.NoError(t, json.Unmarshal([]byte(out), &docs))
		require.NotEmpty(t, docs, "two lunar months always contain spring tides")
		assert.Less(t, len(docs), 60)
		for _, d := range docs {
			assert.Equal(t, models.CategorySpring, d.Category, d.Date)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := run(t, cfgPath, "calendar", "--only", "king")
		assert.Error(t, err)
	})

	t.Run("zero days", func(t *testing.T) {
		_, err := run(t, cfgPath, "calendar", "--days", "0")
		assert.Error(t, err)
	})
}

func TestTripsCommands(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, cfgPath, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved trips.")

	out, err = run(t, cfgPath, "trips", "add", "Harbor", "dawn", "--date", "2025-12-04", "--notes", "bring shrimp")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved trip "Harbor dawn" for 2025-12-04`)

	out, err = run(t, cfgPath, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-12-04")
	assert.Contains(t, out, "Harbor dawn")
	assert.Contains(t, out, "bring shrimp")

	out, err = run(t, cfgPath, "trips", "rm", "Harbor", "dawn")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted trip")

	_, err = run(t, cfgPath, "trips", "rm", "Harbor dawn")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `no trip named "Harbor dawn"`), err.Error())
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.Default()
	cfg.CalendarDays = 0
	require.NoError(t, cfg.Save(path))

	_, err := run(t, path, "day")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestTripsListUpcomingAndShow(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "trips", "add", "Opening", "day", "--date", "2000-01-06", "--notes", "first light")
	require.NoError(t, err)
	_, err = run(t, cfgPath, "trips", "add", "Far", "off", "--date", "10000-01-01")
	require.NoError(t, err)

	out, err := run(t, cfgPath, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2000-01-06")
	assert.Contains(t, out, "10000-01-01")
	assert.Less(t, strings.Index(out, "Opening day"), strings.Index(out, "Far off"))

	out, err = run(t, cfgPath, "trips", "list", "--upcoming")
	require.NoError(t, err)
	assert.Contains(t, out, "Far off")
	assert.NotContains(t, out, "Opening day")

	out, err = run(t, cfgPath, "trips", "show", "Opening", "day")
	require.NoError(t, err)
	assert.Contains(t, out, "Trip: Opening day")
	assert.Contains(t, out, "Notes: first light")
	assert.Contains(t, out, "Tide estimate for 2000-01-06")
	assert.Contains(t, out, "Spring")

	out, err = run(t, cfgPath, "trips", "show", "Far off", "--json")
	require.NoError(t, err)
	var doc report.DayDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "10000-01-01", doc.Date)

	_, err = run(t, cfgPath, "trips", "show", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no trip named "nobody"`)
}
