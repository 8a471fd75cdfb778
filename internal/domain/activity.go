package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityCategory classifies what kind of activity this is.
type ActivityCategory string

const (
	CategorySightseeing   ActivityCategory = "sightseeing"
	CategoryFood          ActivityCategory = "food"
	CategoryAdventure     ActivityCategory = "adventure"
	CategoryShopping      ActivityCategory = "shopping"
	CategoryEntertainment ActivityCategory = "entertainment"
	CategoryRelaxation    ActivityCategory = "relaxation"
	CategoryOther         ActivityCategory = "other"
)

// Valid reports whether c is one of the defined activity categories.
func (c ActivityCategory) Valid() bool {
	switch c {
	case CategorySightseeing, CategoryFood, CategoryAdventure, CategoryShopping,
		CategoryEntertainment, CategoryRelaxation, CategoryOther:
		return true
	}
	return false
}

// Activity is something planned at a stop. TripID is denormalized from the
// owning stop for query convenience and must always agree with stop.TripID;
// the service forces it on create.
// Date must fall within the parent stop's [ArrivalDate, DepartureDate] range.
type Activity struct {
	ID            uuid.UUID        `json:"id"`
	StopID        uuid.UUID        `json:"stopId"`
	TripID        uuid.UUID        `json:"tripId"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Category      ActivityCategory `json:"category"`
	Date          time.Time        `json:"date"`
	EstimatedCost float64          `json:"estimatedCost"`
	ActualCost    float64          `json:"actualCost"`
	Duration      int              `json:"duration"`
	Location      string           `json:"location,omitempty"`
	IsBooked      bool             `json:"isBooked"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
