package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stop is a single city visited during a trip.
// Order defines the display sequence within the trip; the repo breaks ties
// by creation time so lists stay deterministic.
type Stop struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"tripId"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	ArrivalDate   time.Time `json:"arrivalDate"`
	DepartureDate time.Time `json:"departureDate"`
	Order         int       `json:"order"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
