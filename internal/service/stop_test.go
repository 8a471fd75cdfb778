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

func validStop(tripID uuid.UUID) domain.Stop {
	return domain.Stop{
		TripID:        tripID,
		City:          "Agra",
		Country:       "India",
		ArrivalDate:   time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC),
	}
}

// tripExists is a trip repo whose GetByID always succeeds.
func tripExists() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id}, nil
		},
	}
}

func echoStopRepo() *mockStopRepo {
	return &mockStopRepo{
		create: func(_ context.Context, s domain.Stop) (domain.Stop, error) { return s, nil },
		update: func(_ context.Context, s domain.Stop) (domain.Stop, error) { return s, nil },
	}
}

func TestStopService_Create_AutoAssignsOrder(t *testing.T) {
	stops := echoStopRepo()
	stops.listByTrip = func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) {
		return []domain.Stop{{}, {}}, nil // two existing stops
	}
	svc := service.NewStopService(tripExists(), stops)

	got, err := svc.Create(context.Background(), validStop(uuid.New()))

	require.NoError(t, err)
	assert.Equal(t, 3, got.Order)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestStopService_Create_KeepsExplicitOrder(t *testing.T) {
	svc := service.NewStopService(tripExists(), echoStopRepo())

	stop := validStop(uuid.New())
	stop.Order = 7

	got, err := svc.Create(context.Background(), stop)

	require.NoError(t, err)
	assert.Equal(t, 7, got.Order)
}

func TestStopService_Create_ParentTripMissing(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewStopService(trips, echoStopRepo())

	_, err := svc.Create(context.Background(), validStop(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStopService_Create_DepartureBeforeArrival(t *testing.T) {
	svc := service.NewStopService(tripExists(), echoStopRepo())

	stop := validStop(uuid.New())
	stop.DepartureDate = stop.ArrivalDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), stop)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStopService_Create_MissingCity(t *testing.T) {
	svc := service.NewStopService(tripExists(), echoStopRepo())

	stop := validStop(uuid.New())
	stop.City = "  "

	_, err := svc.Create(context.Background(), stop)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStopService_Update_PreservesTripAndCreation(t *testing.T) {
	existing := validStop(uuid.New())
	existing.ID = uuid.New()
	existing.Order = 2
	existing.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	stops := echoStopRepo()
	stops.getByID = func(_ context.Context, _ uuid.UUID) (domain.Stop, error) { return existing, nil }
	svc := service.NewStopService(tripExists(), stops)

	in := validStop(uuid.New()) // forged tripID must be ignored
	in.ID = existing.ID
	in.City = "Jaipur"

	got, err := svc.Update(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Jaipur", got.City)
	assert.Equal(t, existing.TripID, got.TripID)
	assert.Equal(t, existing.CreatedAt, got.CreatedAt)
	assert.Equal(t, 2, got.Order) // zero order falls back to the stored one
}

func TestStopService_ListByTrip_Empty(t *testing.T) {
	stops := echoStopRepo()
	stops.listByTrip = func(_ context.Context, _ uuid.UUID) ([]domain.Stop, error) { return nil, nil }
	svc := service.NewStopService(tripExists(), stops)

	got, err := svc.ListByTrip(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
