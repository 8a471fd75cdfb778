package repo

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/store"
)

// StopRepo defines the persistence operations for Stops, including the
// cascade delete over the stop's activities.
type StopRepo interface {
	// Create inserts a new stop and returns the stored record.
	Create(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// GetByID retrieves a single stop by primary key.
	// Returns domain.ErrNotFound if no stop with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error)

	// ListByTrip returns all stops for a trip sorted ascending by order,
	// ties broken by creation time so the sequence is deterministic.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)

	// Update overwrites an existing stop record.
	// Returns domain.ErrNotFound if no stop with that ID exists.
	Update(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// Delete removes a stop and all activities with a matching stopId.
	// Activities are deleted before the stop record; a mid-cascade failure
	// leaves the stop intact with some activities already gone.
	// Sibling stops and their activities are never touched.
	Delete(ctx context.Context, id uuid.UUID) error
}

// storeStopRepo is the object-store implementation of StopRepo.
type storeStopRepo struct {
	st *store.Store
}

// NewStopRepo constructs a StopRepo backed by the provided store.
func NewStopRepo(st *store.Store) StopRepo {
	return &storeStopRepo{st: st}
}

func (r *storeStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	if err := r.st.Add(ctx, colStops, stop.ID.String(), stop); err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w", err)
	}

	var stored domain.Stop
	if err := r.st.Get(ctx, colStops, stop.ID.String(), &stored); err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w", err)
	}
	return stored, nil
}

func (r *storeStopRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error) {
	var stop domain.Stop
	if err := r.st.Get(ctx, colStops, id.String(), &stop); err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.GetByID: %w", err)
	}
	return stop, nil
}

func (r *storeStopRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	var stops []domain.Stop
	if err := r.st.GetByIndex(ctx, colStops, "tripId", tripID.String(), &stops); err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTrip: %w", err)
	}

	sort.Slice(stops, func(i, j int) bool {
		if stops[i].Order != stops[j].Order {
			return stops[i].Order < stops[j].Order
		}
		if !stops[i].CreatedAt.Equal(stops[j].CreatedAt) {
			return stops[i].CreatedAt.Before(stops[j].CreatedAt)
		}
		return stops[i].ID.String() < stops[j].ID.String()
	})
	return stops, nil
}

func (r *storeStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	var existing domain.Stop
	if err := r.st.Get(ctx, colStops, stop.ID.String(), &existing); err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Update: %w", err)
	}

	if err := r.st.Put(ctx, colStops, stop.ID.String(), stop); err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Update: %w", err)
	}
	return stop, nil
}

func (r *storeStopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	var stop domain.Stop
	if err := r.st.Get(ctx, colStops, id.String(), &stop); err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}

	// Only activities indexed under THIS stop; siblings keep theirs.
	var activities []child
	if err := r.st.GetByIndex(ctx, colActivities, "stopId", id.String(), &activities); err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: activities: %w", err)
	}
	for _, a := range activities {
		if err := r.st.Remove(ctx, colActivities, a.ID.String()); err != nil {
			return fmt.Errorf("repo.StopRepo.Delete: activities: %w", err)
		}
	}

	if err := r.st.Remove(ctx, colStops, id.String()); err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}
	return nil
}
