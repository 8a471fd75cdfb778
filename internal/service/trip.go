// Package service contains the business logic for the Travel Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No storage details live here; services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/refdata"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

// TripService implements business logic for Trip operations.
// It also holds the activity repo because ActualSpent is derived from the
// trip's activities and recomputed here.
type TripService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo) *TripService {
	return &TripService{trips: trips, activities: activities}
}

// Create validates and persists a new trip owned by userID.
// attractionIDs reference the attraction catalog; each resolved entry is
// copied onto the trip as a snapshot. Unknown ids are a validation error.
// The id, share id and timestamps are generated here; caller values are
// ignored.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, trip domain.Trip, attractionIDs []int) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	snapshots := make([]domain.AttractionSnapshot, 0, len(attractionIDs))
	for _, id := range attractionIDs {
		a, ok := refdata.AttractionByID(id)
		if !ok {
			return domain.Trip{}, fmt.Errorf("%w: unknown attraction id %d", domain.ErrValidation, id)
		}
		snapshots = append(snapshots, domain.AttractionSnapshot{
			CatalogID: a.ID,
			Name:      a.Name,
			Location:  a.Location,
			State:     a.State,
			Category:  a.Category,
		})
	}

	now := time.Now().UTC()
	trip.ID = uuid.New()
	trip.UserID = userID
	trip.ShareID = xid.New().String()
	trip.ActualSpent = 0
	trip.SelectedAttractions = snapshots
	trip.CreatedAt = now
	trip.UpdatedAt = now

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// GetByShareID returns the trip behind a public share link.
// Trips that are not marked public stay hidden even when the share id is
// known, so revoking publicity revokes the link.
func (s *TripService) GetByShareID(ctx context.Context, shareID string) (domain.Trip, error) {
	trip, err := s.trips.GetByShareID(ctx, shareID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByShareID: %w", err)
	}
	if !trip.IsPublic {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByShareID: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// ListByUser returns all trips owned by the given user, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByUser: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	sortTripsNewestFirst(trips)
	return trips, nil
}

// Update validates and persists changes to an existing trip.
// Identity and derived fields (user, share id, actual spent, attraction
// snapshots, created at) are carried over from the stored record and cannot
// be changed through this path.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	existing, err := s.trips.GetByID(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip.UserID = existing.UserID
	trip.ShareID = existing.ShareID
	trip.ActualSpent = existing.ActualSpent
	trip.SelectedAttractions = existing.SelectedAttractions
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now().UTC()

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip and everything it owns (stops, activities, expenses).
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// RecalculateSpent recomputes the trip's ActualSpent cache from its
// activities' estimated costs and persists the result.
func (s *TripService) RecalculateSpent(ctx context.Context, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := recalcActualSpent(ctx, s.trips, s.activities, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RecalculateSpent: %w", err)
	}
	return trip, nil
}

// recalcActualSpent sums the estimated costs of every activity on the trip
// and stores the total on the trip record. Shared with ActivityService,
// which triggers the same recomputation after each activity mutation.
func recalcActualSpent(ctx context.Context, trips repo.TripRepo, activities repo.ActivityRepo, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}

	list, err := activities.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}

	var total float64
	for _, a := range list {
		total += a.EstimatedCost
	}

	trip.ActualSpent = total
	trip.UpdatedAt = time.Now().UTC()
	return trips.Update(ctx, trip)
}

// sortTripsNewestFirst orders by start date descending, ties broken by
// creation time then id so the order is stable across calls.
func sortTripsNewestFirst(trips []domain.Trip) {
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].StartDate.Equal(trips[j].StartDate) {
			return trips[i].StartDate.After(trips[j].StartDate)
		}
		if !trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].CreatedAt.After(trips[j].CreatedAt)
		}
		return trips[i].ID.String() > trips[j].ID.String()
	})
}

// validateTrip enforces business rules common to both Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - EndDate must not be before StartDate.
//   - TotalBudget must not be negative.
//   - TravelMode must be one of the defined modes.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	if trip.TotalBudget < 0 {
		return fmt.Errorf("%w: totalBudget must not be negative", domain.ErrValidation)
	}
	if !trip.TravelMode.Valid() {
		return fmt.Errorf("%w: invalid travelMode %q", domain.ErrValidation, trip.TravelMode)
	}
	return nil
}
