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

// ActivityService implements business logic for Activity operations.
// Every mutation recomputes the owning trip's ActualSpent cache, so the
// service holds the trip repo as well as the stop repo for parent checks.
type ActivityService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, stops: stops, activities: activities}
}

// Create validates the activity, verifies the parent stop exists, then
// persists it and refreshes the trip's ActualSpent.
// TripID is always taken from the parent stop; a caller-supplied value that
// disagrees is overwritten, keeping the denormalized field consistent.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent stop does not exist.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	stop, err := s.stops.GetByID(ctx, activity.StopID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	activity.TripID = stop.TripID

	if err := validateActivity(activity, stop); err != nil {
		return domain.Activity{}, err
	}

	now := time.Now().UTC()
	activity.ID = uuid.New()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if _, err := recalcActualSpent(ctx, s.trips, s.activities, result.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID.
// Returns domain.ErrNotFound if no activity with that ID exists.
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByStop returns all activities planned at a stop.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByStop(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	activities, err := s.activities.ListByStop(ctx, stopID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStop: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// ListByTrip returns all activities across a trip's stops.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Update validates and persists changes to an existing activity, then
// refreshes the trip's ActualSpent. The parent stop, trip and creation time
// are carried over from the stored record; activities cannot be moved
// between stops.
func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	existing, err := s.activities.GetByID(ctx, activity.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	activity.StopID = existing.StopID
	activity.TripID = existing.TripID
	activity.CreatedAt = existing.CreatedAt
	activity.UpdatedAt = time.Now().UTC()

	stop, err := s.stops.GetByID(ctx, activity.StopID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	if err := validateActivity(activity, stop); err != nil {
		return domain.Activity{}, err
	}

	result, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	if _, err := recalcActualSpent(ctx, s.trips, s.activities, result.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity and refreshes the trip's ActualSpent.
// Returns domain.ErrNotFound if the activity does not exist.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	if _, err := recalcActualSpent(ctx, s.trips, s.activities, existing.TripID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// validateActivity enforces business rules common to both Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Category must be one of the defined categories.
//   - Date must fall within the parent stop's arrival/departure range.
//   - Costs and duration must not be negative.
func validateActivity(activity domain.Activity, stop domain.Stop) error {
	if strings.TrimSpace(activity.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !activity.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, activity.Category)
	}
	if activity.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if activity.Date.Before(stop.ArrivalDate) || activity.Date.After(stop.DepartureDate) {
		return fmt.Errorf("%w: date must fall within the stop's visit", domain.ErrValidation)
	}
	if activity.EstimatedCost < 0 || activity.ActualCost < 0 {
		return fmt.Errorf("%w: costs must not be negative", domain.ErrValidation)
	}
	if activity.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	return nil
}
