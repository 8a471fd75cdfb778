// Package repo contains all persistence logic for the Travel Planner.
// Each entity has its own file with an interface and a store-backed
// implementation. No business logic lives here; only store calls and the
// cascade-delete sequencing the data model requires.
package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/store"
)

// Collection names as registered with the store adapter.
const (
	colUsers      = "users"
	colTrips      = "trips"
	colStops      = "stops"
	colActivities = "activities"
	colExpenses   = "expenses"
)

// UserRepo defines the persistence operations for Users.
// The service layer depends on this interface, not the concrete store
// implementation, which allows the service to be unit-tested with a mock.
type UserRepo interface {
	// Create inserts a new user and returns the stored record.
	// The caller supplies the id; nothing is generated here.
	// Returns domain.ErrDuplicateKey when the id or email is already taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a single user by primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByEmail retrieves the single user with the given email.
	// Returns domain.ErrNotFound when no user matches; callers branch on
	// this for signup/login flows. Returns domain.ErrIntegrity if the unique
	// email index somehow yields more than one user.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Update overwrites an existing user record.
	// Returns domain.ErrNotFound if no user with that ID exists.
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

// storeUserRepo is the object-store implementation of UserRepo.
type storeUserRepo struct {
	st *store.Store
}

// NewUserRepo constructs a UserRepo backed by the provided store.
func NewUserRepo(st *store.Store) UserRepo {
	return &storeUserRepo{st: st}
}

func (r *storeUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := r.st.Add(ctx, colUsers, user.ID.String(), user); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}

	// Read the record back so the caller gets exactly what was stored.
	var stored domain.User
	if err := r.st.Get(ctx, colUsers, user.ID.String(), &stored); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return stored, nil
}

func (r *storeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var user domain.User
	if err := r.st.Get(ctx, colUsers, id.String(), &user); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return user, nil
}

func (r *storeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var users []domain.User
	if err := r.st.GetByIndex(ctx, colUsers, "email", email, &users); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", err)
	}

	switch len(users) {
	case 0:
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", domain.ErrNotFound)
	case 1:
		return users[0], nil
	default:
		// The email index is unique; more than one match means the store is
		// corrupt. Surface it; never pick one silently.
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %d users share email: %w",
			len(users), domain.ErrIntegrity)
	}
}

func (r *storeUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	// Updating an absent record is a precondition violation, not an upsert.
	var existing domain.User
	if err := r.st.Get(ctx, colUsers, user.ID.String(), &existing); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Update: %w", err)
	}

	if err := r.st.Put(ctx, colUsers, user.ID.String(), user); err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Update: %w", err)
	}
	return user, nil
}
