package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/refdata"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

// BookingRequest selects one hotel room for a number of nights.
type BookingRequest struct {
	HotelID  string    `json:"hotelId"`
	RoomType string    `json:"roomType"`
	Nights   int       `json:"nights"`
	CheckIn  time.Time `json:"checkIn"`
}

// BookingService turns confirmed accommodation selections into expenses.
type BookingService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewBookingService constructs a BookingService backed by the provided repos.
func NewBookingService(trips repo.TripRepo, expenses repo.ExpenseRepo) *BookingService {
	return &BookingService{trips: trips, expenses: expenses}
}

// ConfirmBookings records one "Accommodation" expense per booking and bumps
// the trip's ActualSpent by the combined total. The whole batch is validated
// against the hotel catalog before anything is written, so an unknown hotel
// or room rejects all of it.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *BookingService) ConfirmBookings(ctx context.Context, tripID uuid.UUID, requests []BookingRequest) ([]domain.Expense, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ConfirmBookings: %w", err)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: at least one booking is required", domain.ErrValidation)
	}

	type priced struct {
		req    BookingRequest
		hotel  refdata.Hotel
		amount float64
	}
	batch := make([]priced, 0, len(requests))

	for _, req := range requests {
		hotel, ok := refdata.HotelByID(req.HotelID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown hotel %q", domain.ErrValidation, req.HotelID)
		}
		if req.Nights < 1 {
			return nil, fmt.Errorf("%w: nights must be at least 1", domain.ErrValidation)
		}

		rate := hotel.Price
		if req.RoomType != "" {
			found := false
			for _, room := range hotel.Rooms {
				if room.Type == req.RoomType {
					rate = room.Price
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("%w: hotel %q has no room type %q",
					domain.ErrValidation, req.HotelID, req.RoomType)
			}
		}

		batch = append(batch, priced{req: req, hotel: hotel, amount: rate * float64(req.Nights)})
	}

	now := time.Now().UTC()
	var total float64
	created := make([]domain.Expense, 0, len(batch))

	for _, b := range batch {
		date := b.req.CheckIn
		if date.IsZero() {
			date = now
		}
		expense := domain.Expense{
			ID:       uuid.New(),
			TripID:   tripID,
			Category: "Accommodation",
			Amount:   b.amount,
			Description: fmt.Sprintf("%s, %s (%d nights)",
				b.hotel.Name, roomLabel(b.req.RoomType), b.req.Nights),
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		stored, err := s.expenses.Create(ctx, expense)
		if err != nil {
			return nil, fmt.Errorf("service.BookingService.ConfirmBookings: %w", err)
		}
		created = append(created, stored)
		total += b.amount
	}

	// The bump keeps the dashboard number fresh between activity
	// recalculations; the next recalculation overwrites it.
	trip.ActualSpent += total
	trip.UpdatedAt = now
	if _, err := s.trips.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("service.BookingService.ConfirmBookings: %w", err)
	}
	return created, nil
}

func roomLabel(roomType string) string {
	if roomType == "" {
		return "standard rate"
	}
	return roomType
}
