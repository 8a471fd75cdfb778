package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/service"
)

func TestStatsService_TripStatistics(t *testing.T) {
	tripID := uuid.New()
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: tripID, TotalBudget: 1000, ActualSpent: 500}, nil
		},
	}
	stops := &mockStopRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) {
			return []domain.Stop{{}, {}}, nil
		},
	}
	activities := &mockActivityRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return []domain.Activity{{EstimatedCost: 500}}, nil
		},
	}
	expenses := &mockExpenseRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Expense, error) {
			return []domain.Expense{
				{Category: "Accommodation", Amount: 150},
				{Category: "Food", Amount: 30},
				{Category: "Food", Amount: 20},
			}, nil
		},
	}
	svc := service.NewStatsService(trips, stops, activities, expenses)

	got, err := svc.TripStatistics(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalStops)
	assert.Equal(t, 1, got.TotalActivities)
	// Expense collection only; the 500 of activity estimates stays out.
	assert.Equal(t, 200.0, got.TotalExpenses)
	assert.Equal(t, 1000.0, got.Budget)
	assert.Equal(t, 800.0, got.Remaining)
	assert.Equal(t, map[string]float64{"Accommodation": 150, "Food": 50}, got.ExpensesByCategory)
}

func TestStatsService_TripStatistics_OverBudget(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{TotalBudget: 100}, nil
		},
	}
	stops := &mockStopRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) { return nil, nil },
	}
	activities := &mockActivityRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) { return nil, nil },
	}
	expenses := &mockExpenseRepo{
		listByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Expense, error) {
			return []domain.Expense{{Category: "Food", Amount: 250}}, nil
		},
	}
	svc := service.NewStatsService(trips, stops, activities, expenses)

	got, err := svc.TripStatistics(context.Background(), uuid.New())

	require.NoError(t, err)
	// Remaining goes negative, never clamped.
	assert.Equal(t, -150.0, got.Remaining)
}

func TestStatsService_UserStatistics(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	past := domain.Trip{
		ID:        uuid.New(),
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	ongoing := domain.Trip{
		ID:        uuid.New(),
		StartDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	}
	upcoming := domain.Trip{
		ID:        uuid.New(),
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	}

	stopsByTrip := map[uuid.UUID][]domain.Stop{
		past.ID: {
			{City: "Paris", Country: "France"},
			{City: "Lyon", Country: "France"},
		},
		ongoing.ID: {
			// Same city revisited on another trip counts once.
			{City: "paris", Country: "FRANCE"},
			{City: "Rome", Country: "Italy"},
		},
		upcoming.ID: {},
	}
	expensesByTrip := map[uuid.UUID][]domain.Expense{
		past.ID:    {{Amount: 100}, {Amount: 50}},
		ongoing.ID: {{Amount: 25}},
	}

	trips := &mockTripRepo{
		listByUser: func(_ context.Context, _ uuid.UUID) ([]domain.Trip, error) {
			return []domain.Trip{past, ongoing, upcoming}, nil
		},
	}
	stops := &mockStopRepo{
		listByTrip: func(_ context.Context, id uuid.UUID) ([]domain.Stop, error) {
			return stopsByTrip[id], nil
		},
	}
	activities := &mockActivityRepo{}
	expenses := &mockExpenseRepo{
		listByTrip: func(_ context.Context, id uuid.UUID) ([]domain.Expense, error) {
			return expensesByTrip[id], nil
		},
	}
	svc := service.NewStatsServiceWithNow(trips, stops, activities, expenses,
		func() time.Time { return now })

	got, err := svc.UserStatistics(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalTrips)
	assert.Equal(t, 2, got.TotalCountries) // France, Italy
	assert.Equal(t, 3, got.TotalCities)    // Paris, Lyon, Rome
	assert.Equal(t, 175.0, got.TotalSpent)
	assert.Equal(t, 1, got.UpcomingTrips)
	assert.Equal(t, 1, got.PastTrips) // the ongoing trip is neither
}
