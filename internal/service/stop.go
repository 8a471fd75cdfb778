package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

// StopService implements business logic for Stop operations.
// It holds the trip repo because creating a stop requires verifying the
// parent trip exists.
type StopService struct {
	trips repo.TripRepo
	stops repo.StopRepo
}

// NewStopService constructs a StopService backed by the provided repos.
func NewStopService(trips repo.TripRepo, stops repo.StopRepo) *StopService {
	return &StopService{trips: trips, stops: stops}
}

// Create validates the stop, verifies the parent trip exists, then persists.
// When Order is zero it is auto-assigned to place the stop at the end of the
// trip's current sequence.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *StopService) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	if _, err := s.trips.GetByID(ctx, stop.TripID); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	if err := validateStop(stop); err != nil {
		return domain.Stop{}, err
	}

	if stop.Order == 0 {
		siblings, err := s.stops.ListByTrip(ctx, stop.TripID)
		if err != nil {
			return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
		}
		stop.Order = len(siblings) + 1
	}

	now := time.Now().UTC()
	stop.ID = uuid.New()
	stop.CreatedAt = now
	stop.UpdatedAt = now

	result, err := s.stops.Create(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single stop by ID.
// Returns domain.ErrNotFound if no stop with that ID exists.
func (s *StopService) GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error) {
	result, err := s.stops.GetByID(ctx, id)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns all stops for a trip in itinerary order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StopService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	stops, err := s.stops.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.StopService.ListByTrip: %w", err)
	}
	if stops == nil {
		return []domain.Stop{}, nil
	}
	return stops, nil
}

// Update validates and persists changes to an existing stop.
// The parent trip and creation time are carried over from the stored record.
func (s *StopService) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	if err := validateStop(stop); err != nil {
		return domain.Stop{}, err
	}

	existing, err := s.stops.GetByID(ctx, stop.ID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	stop.TripID = existing.TripID
	stop.CreatedAt = existing.CreatedAt
	stop.UpdatedAt = time.Now().UTC()
	if stop.Order == 0 {
		stop.Order = existing.Order
	}

	result, err := s.stops.Update(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a stop and the activities planned at it.
// Returns domain.ErrNotFound if the stop does not exist.
func (s *StopService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.stops.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	return nil
}

// validateStop enforces business rules common to both Create and Update.
//   - City must be non-empty (whitespace-only names are rejected).
//   - DepartureDate must not be before ArrivalDate.
//   - Order must not be negative.
func validateStop(stop domain.Stop) error {
	if strings.TrimSpace(stop.City) == "" {
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if stop.ArrivalDate.IsZero() || stop.DepartureDate.IsZero() {
		return fmt.Errorf("%w: arrivalDate and departureDate are required", domain.ErrValidation)
	}
	if stop.DepartureDate.Before(stop.ArrivalDate) {
		return fmt.Errorf("%w: departureDate must not be before arrivalDate", domain.ErrValidation)
	}
	if stop.Order < 0 {
		return fmt.Errorf("%w: order must not be negative", domain.ErrValidation)
	}
	return nil
}
