package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/service"
)

func echoExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{
		create: func(_ context.Context, e domain.Expense) (domain.Expense, error) { return e, nil },
		update: func(_ context.Context, e domain.Expense) (domain.Expense, error) { return e, nil },
	}
}

func TestExpenseService_Create(t *testing.T) {
	svc := service.NewExpenseService(tripExists(), echoExpenseRepo())

	got, err := svc.Create(context.Background(), domain.Expense{
		TripID:   uuid.New(),
		Category: "Food",
		Amount:   42.5,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.Date.IsZero()) // unset date defaults to now
}

func TestExpenseService_Create_ParentTripMissing(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewExpenseService(trips, echoExpenseRepo())

	_, err := svc.Create(context.Background(), domain.Expense{
		TripID:   uuid.New(),
		Category: "Food",
		Amount:   10,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseService_Create_Validation(t *testing.T) {
	svc := service.NewExpenseService(tripExists(), echoExpenseRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Expense{TripID: uuid.New(), Category: " ", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, domain.Expense{TripID: uuid.New(), Category: "Food", Amount: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpenseService_Update_PreservesTrip(t *testing.T) {
	existing := domain.Expense{ID: uuid.New(), TripID: uuid.New(), Category: "Food", Amount: 10}

	expenses := echoExpenseRepo()
	expenses.getByID = func(_ context.Context, _ uuid.UUID) (domain.Expense, error) {
		return existing, nil
	}
	svc := service.NewExpenseService(tripExists(), expenses)

	in := domain.Expense{ID: existing.ID, TripID: uuid.New(), Category: "Transport", Amount: 20}
	got, err := svc.Update(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Transport", got.Category)
	assert.Equal(t, existing.TripID, got.TripID)
}
