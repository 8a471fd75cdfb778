package service_test

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs; an unset method that
// gets called panics, which is exactly the signal you want.

import (
	"context"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

type mockUserRepo struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
	update     func(ctx context.Context, user domain.User) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return m.update(ctx, user)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listByUser   func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	getByShareID func(ctx context.Context, shareID string) (domain.Trip, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockTripRepo) GetByShareID(ctx context.Context, shareID string) (domain.Trip, error) {
	return m.getByShareID(ctx, shareID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockStopRepo struct {
	create     func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Stop, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	update     func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, stop)
}
func (m *mockStopRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Stop, error) {
	return m.getByID(ctx, id)
}
func (m *mockStopRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.update(ctx, stop)
}
func (m *mockStopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.StopRepo = (*mockStopRepo)(nil)

type mockActivityRepo struct {
	create     func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	listByStop func(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)
	update     func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockActivityRepo) ListByStop(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStop(ctx, stopID)
}
func (m *mockActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.update(ctx, activity)
}
func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockExpenseRepo struct {
	create     func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Expense, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)
	update     func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	return m.create(ctx, expense)
}
func (m *mockExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockExpenseRepo) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	return m.update(ctx, expense)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ExpenseRepo = (*mockExpenseRepo)(nil)
