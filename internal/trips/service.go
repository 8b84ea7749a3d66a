// Package trips stores planned fishing trips and pairs them with their tide
// estimates.
package trips

import (
	"fmt"

	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/tide"
	"go.uber.org/zap"
)

// Service orchestrates trip operations
type Service struct {
	repo   *Repository
	engine *tide.Engine
	logger *zap.Logger
}

// NewService creates a new trip service. A nil logger discards output.
func NewService(repo *Repository, engine *tide.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, engine: engine, logger: logger}
}

// Add saves a trip for date, replacing any trip with the same name
func (s *Service) Add(name string, date models.Date, notes string) (*models.Trip, error) {
	trip := &models.Trip{Name: name, Date: date, Notes: notes}
	if err := s.repo.Save(trip); err != nil {
		return nil, fmt.Errorf("adding trip %q: %w", name, err)
	}
	s.logger.Info("trip saved",
		zap.String("name", trip.Name),
		zap.String("id", trip.ID),
		zap.Stringer("date", trip.Date))
	return trip, nil
}

// Get returns the trip with the given name
func (s *Service) Get(name string) (*models.Trip, error) {
	return s.repo.Get(name)
}

// Delete removes a trip by name
func (s *Service) Delete(name string) error {
	if err := s.repo.Delete(name); err != nil {
		return err
	}
	s.logger.Info("trip deleted", zap.String("name", name))
	return nil
}

// Plan returns every trip with the tide estimate for its date
func (s *Service) Plan() ([]models.PlannedTrip, error) {
	trips, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	planned := make([]models.PlannedTrip, 0, len(trips))
	for _, t := range trips {
		planned = append(planned, models.PlannedTrip{Trip: t, Day: s.engine.Day(t.Date)})
	}
	s.logger.Debug("trips planned", zap.Int("count", len(planned)))
	return planned, nil
}

// Upcoming returns planned trips on or after from
func (s *Service) Upcoming(from models.Date) ([]models.PlannedTrip, error) {
	planned, err := s.Plan()
	if err != nil {
		return nil, err
	}

	var upcoming []models.PlannedTrip
	for _, p := range planned {
		if !p.Trip.Date.Before(from) {
			upcoming = append(upcoming, p)
		}
	}
	return upcoming, nil
}
