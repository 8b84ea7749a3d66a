package trips

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/ngmaloney/tide-terminal/internal/database"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/tide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	trip := &models.Trip{Name: "  Harbor dawn ", Date: models.NewDate(2025, time.November, 27), Notes: "bring squid"}
	require.NoError(t, repo.Save(trip))

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "Harbor dawn", trip.Name)
	assert.False(t, trip.CreatedAt.IsZero())

	got, err := repo.Get("Harbor dawn")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, models.NewDate(2025, time.November, 27), got.Date)
	assert.Equal(t, "bring squid", got.Notes)
}

func TestRepository_SaveUpsertsByName(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	first := &models.Trip{Name: "Jetty", Date: models.NewDate(2025, time.June, 1)}
	require.NoError(t, repo.Save(first))

	second := &models.Trip{Name: "Jetty", Date: models.NewDate(2025, time.June, 8), Notes: "moved a week"}
	require.NoError(t, repo.Save(second))

	assert.Equal(t, first.ID, second.ID, "upsert should keep the original ID")

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.NewDate(2025, time.June, 8), all[0].Date)
	assert.Equal(t, "moved a week", all[0].Notes)
}

func TestRepository_SaveRequiresName(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	assert.Error(t, repo.Save(&models.Trip{Name: "   "}))
}

func TestRepository_ListOrder(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	for _, tr := range []models.Trip{
		{Name: "b-late", Date: models.NewDate(2026, time.March, 1)},
		{Name: "z-early", Date: models.NewDate(2025, time.January, 1)},
		{Name: "a-late", Date: models.NewDate(2026, time.March, 1)},
	} {
		require.NoError(t, repo.Save(&tr))
	}

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)

	names := []string{all[0].Name, all[1].Name, all[2].Name}
	assert.Equal(t, []string{"z-early", "a-late", "b-late"}, names)
}

func TestRepository_SaveAnyYear(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	ok := models.NewDate(2025, time.November, 27)
	far := models.NewDate(10000, time.January, 1)
	ancient := models.NewDate(-1, time.March, 15)

	require.NoError(t, repo.Save(&models.Trip{Name: "ok", Date: ok}))

	farTrip := &models.Trip{Name: "far", Date: far}
	require.NoError(t, repo.Save(farTrip))
	assert.Equal(t, far, farTrip.Date)

	require.NoError(t, repo.Save(&models.Trip{Name: "ancient", Date: ancient}))

	got, err := repo.Get("ancient")
	require.NoError(t, err)
	assert.Equal(t, ancient, got.Date)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []models.Date{ancient, ok, far}, []models.Date{all[0].Date, all[1].Date, all[2].Date})
}

func TestRepository_SaveRejectsInvalidDate(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	require.NoError(t, repo.Save(&models.Trip{Name: "ok", Date: models.NewDate(2025, time.May, 1)}))

	for _, d := range []models.Date{{}, {Year: 2025, Month: time.February, Day: 30}} {
		assert.Error(t, repo.Save(&models.Trip{Name: "bad", Date: d}))
	}

	_, err := repo.Get("bad")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1, "a rejected save must not leave a row behind")
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	require.NoError(t, repo.Save(&models.Trip{Name: "Pier", Date: models.NewDate(2025, time.May, 5)}))

	require.NoError(t, repo.Delete("Pier"))

	_, err := repo.Get("Pier")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete("Pier"), ErrNotFound)
}

func TestService_Plan(t *testing.T) {
	engine := tide.NewEngine(nil, tide.WithMemo())
	svc := NewService(NewRepository(openTestDB(t)), engine, nil)

	_, err := svc.Add("Past", models.NewDate(2024, time.January, 1), "")
	require.NoError(t, err)
	_, err = svc.Add("New moon", models.NewDate(2000, time.January, 6), "")
	require.NoError(t, err)
	_, err = svc.Add("Future", models.NewDate(2030, time.July, 4), "")
	require.NoError(t, err)

	planned, err := svc.Plan()
	require.NoError(t, err)
	require.Len(t, planned, 3)

	assert.Equal(t, "New moon", planned[0].Trip.Name)
	assert.Equal(t, models.CategorySpring, planned[0].Day.Category)
	for _, p := range planned {
		assert.Equal(t, tide.ComputeDay(p.Trip.Date), p.Day)
	}

	upcoming, err := svc.Upcoming(models.NewDate(2025, time.January, 1))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Future", upcoming[0].Trip.Name)

	require.NoError(t, svc.Delete("Future"))
	assert.ErrorIs(t, svc.Delete("Future"), ErrNotFound)

	got, err := svc.Get("New moon")
	require.NoError(t, err)
	assert.Equal(t, models.NewDate(2000, time.January, 6), got.Date)

	planned, err = svc.Plan()
	require.NoError(t, err)
	assert.Len(t, planned, 2)
}
