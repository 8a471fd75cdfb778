package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/store"
)

// TripRepo defines the persistence operations for Trips, including the
// cascade delete over the trip's stops, activities and expenses.
type TripRepo interface {
	// Create inserts a new trip and returns the stored record.
	// The caller supplies the id and shareId; nothing is generated here.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByUser returns all trips owned by the given user.
	// Order is unspecified; callers sort as needed.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// GetByShareID retrieves the single trip with the given share id.
	// Returns domain.ErrNotFound when no trip matches and domain.ErrIntegrity
	// if the unique shareId index yields more than one trip.
	GetByShareID(ctx context.Context, shareID string) (domain.Trip, error)

	// Update overwrites an existing trip record.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip and everything it owns: all stops, activities
	// and expenses with a matching tripId are deleted before the trip record
	// itself. If any step fails the error propagates and the trip record is
	// left intact; already-deleted children are NOT restored, so a failure
	// mid-cascade leaves a partially cascaded state (single-user local store,
	// accepted limitation).
	Delete(ctx context.Context, id uuid.UUID) error
}

// storeTripRepo is the object-store implementation of TripRepo.
type storeTripRepo struct {
	st *store.Store
}

// NewTripRepo constructs a TripRepo backed by the provided store.
func NewTripRepo(st *store.Store) TripRepo {
	return &storeTripRepo{st: st}
}

func (r *storeTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := r.st.Add(ctx, colTrips, trip.ID.String(), trip); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	var stored domain.Trip
	if err := r.st.Get(ctx, colTrips, trip.ID.String(), &stored); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return stored, nil
}

func (r *storeTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	var trip domain.Trip
	if err := r.st.Get(ctx, colTrips, id.String(), &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return trip, nil
}

func (r *storeTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := r.st.GetByIndex(ctx, colTrips, "userId", userID.String(), &trips); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	return trips, nil
}

func (r *storeTripRepo) GetByShareID(ctx context.Context, shareID string) (domain.Trip, error) {
	var trips []domain.Trip
	if err := r.st.GetByIndex(ctx, colTrips, "shareId", shareID, &trips); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByShareID: %w", err)
	}

	switch len(trips) {
	case 0:
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByShareID: %w", domain.ErrNotFound)
	case 1:
		return trips[0], nil
	default:
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByShareID: %d trips share id: %w",
			len(trips), domain.ErrIntegrity)
	}
}

func (r *storeTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	var existing domain.Trip
	if err := r.st.Get(ctx, colTrips, trip.ID.String(), &existing); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	if err := r.st.Put(ctx, colTrips, trip.ID.String(), trip); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return trip, nil
}

func (r *storeTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Verify the trip exists before touching children, so deleting a ghost
	// trip reports ErrNotFound instead of silently sweeping nothing.
	var trip domain.Trip
	if err := r.st.Get(ctx, colTrips, id.String(), &trip); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}

	// All three child sweeps must complete before the trip record goes.
	if err := r.removeByTrip(ctx, colStops, id); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: stops: %w", err)
	}
	if err := r.removeByTrip(ctx, colActivities, id); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: activities: %w", err)
	}
	if err := r.removeByTrip(ctx, colExpenses, id); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: expenses: %w", err)
	}

	if err := r.st.Remove(ctx, colTrips, id.String()); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

// child is the minimal shape shared by all trip-owned records.
type child struct {
	ID uuid.UUID `json:"id"`
}

// removeByTrip deletes every record in collection whose tripId matches.
func (r *storeTripRepo) removeByTrip(ctx context.Context, collection string, tripID uuid.UUID) error {
	var children []child
	if err := r.st.GetByIndex(ctx, collection, "tripId", tripID.String(), &children); err != nil {
		return err
	}
	for _, c := range children {
		if err := r.st.Remove(ctx, collection, c.ID.String()); err != nil {
			return err
		}
	}
	return nil
}
