package trips

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ngmaloney/tide-terminal/internal/models"
)

// ErrNotFound is returned when no trip has the requested name.
var ErrNotFound = errors.New("trip not found")

// Repository handles persistence for saved trips
type Repository struct {
	db *sql.DB
}

// NewRepository creates a trip repository on an open database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save stores a trip, replacing any existing trip with the same name.
// The trip's ID is set to the stored row's ID.
func (r *Repository) Save(trip *models.Trip) error {
	trip.Name = strings.TrimSpace(trip.Name)
	if trip.Name == "" {
		return errors.New("trip name is required")
	}
	if !trip.Date.Valid() {
		return fmt.Errorf("trip %s: invalid date %+v", trip.Name, trip.Date)
	}
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	query := `
		INSERT INTO trips (id, name, trip_day, trip_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			trip_day = excluded.trip_day,
			trip_date = excluded.trip_date,
			notes = excluded.notes
	`
	_, err = tx.Exec(query,
		trip.ID,
		trip.Name,
		trip.Date.DayNumber(),
		trip.Date.String(),
		trip.Notes,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving trip: %w", err)
	}

	// An update keeps the original row's ID and creation time.
	stored, err := getTrip(tx, trip.Name)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trip: %w", err)
	}
	*trip = *stored
	return nil
}

// List retrieves all saved trips ordered by date, then name
func (r *Repository) List() ([]models.Trip, error) {
	rows, err := r.db.Query("SELECT " + tripColumns + " FROM trips ORDER BY trip_day, name")
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}

	return trips, nil
}

// Get retrieves a trip by name
func (r *Repository) Get(name string) (*models.Trip, error) {
	return getTrip(r.db, name)
}

const tripColumns = "id, name, trip_day, notes, created_at"

type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func getTrip(q queryRower, name string) (*models.Trip, error) {
	row := q.QueryRow("SELECT "+tripColumns+" FROM trips WHERE name = ?", name)
	t, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a trip by name
func (r *Repository) Delete(name string) error {
	res, err := r.db.Exec("DELETE FROM trips WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (models.Trip, error) {
	var t models.Trip
	var day int64
	var notes sql.NullString // Handle potential nulls

	if err := s.Scan(&t.ID, &t.Name, &day, &notes, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, err
		}
		return t, fmt.Errorf("scanning trip: %w", err)
	}

	t.Date = models.FromDayNumber(day)
	t.Notes = notes.String
	return t, nil
}
