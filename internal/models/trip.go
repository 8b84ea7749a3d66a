package models

import "time"

// Trip is a saved fishing outing on a given date.
// Only the date is stored; its tide estimate is recomputed on load.
type Trip struct {
	ID        string    `json:"id"`   // UUID, empty until saved
	Name      string    `json:"name"` // unique, user-chosen
	Date      Date      `json:"-"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PlannedTrip pairs a trip with the tide estimate for its date.
type PlannedTrip struct {
	Trip Trip
	Day  TideDay
}
