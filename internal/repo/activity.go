package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/store"
)

// ActivityRepo defines the persistence operations for Activities.
// Activities carry both stopId and a denormalized tripId, so they can be
// listed either per stop or per trip without a join.
type ActivityRepo interface {
	// Create inserts a new activity and returns the stored record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by primary key.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	// ListByTrip returns all activities for a trip. Order is unspecified.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// ListByStop returns all activities for a stop. Order is unspecified.
	ListByStop(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites an existing activity record.
	// Returns domain.ErrNotFound if no activity with that ID exists.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID. Idempotent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// storeActivityRepo is the object-store implementation of ActivityRepo.
type storeActivityRepo struct {
	st *store.Store
}

// NewActivityRepo constructs an ActivityRepo backed by the provided store.
func NewActivityRepo(st *store.Store) ActivityRepo {
	return &storeActivityRepo{st: st}
}

func (r *storeActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := r.st.Add(ctx, colActivities, activity.ID.String(), activity); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}

	var stored domain.Activity
	if err := r.st.Get(ctx, colActivities, activity.ID.String(), &stored); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return stored, nil
}

func (r *storeActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	var activity domain.Activity
	if err := r.st.Get(ctx, colActivities, id.String(), &activity); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return activity, nil
}

func (r *storeActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.st.GetByIndex(ctx, colActivities, "tripId", tripID.String(), &activities); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: %w", err)
	}
	return activities, nil
}

func (r *storeActivityRepo) ListByStop(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.st.GetByIndex(ctx, colActivities, "stopId", stopID.String(), &activities); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByStop: %w", err)
	}
	return activities, nil
}

func (r *storeActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	var existing domain.Activity
	if err := r.st.Get(ctx, colActivities, activity.ID.String(), &existing); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}

	if err := r.st.Put(ctx, colActivities, activity.ID.String(), activity); err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return activity, nil
}

func (r *storeActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.st.Remove(ctx, colActivities, id.String()); err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	return nil
}
