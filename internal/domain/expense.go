package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a recorded cost against a trip. StopID and ActivityID are
// optional cross-references; nil when the expense is trip-level (e.g. an
// accommodation booking). Category is free text, not an enum.
type Expense struct {
	ID          uuid.UUID  `json:"id"`
	TripID      uuid.UUID  `json:"tripId"`
	StopID      *uuid.UUID `json:"stopId,omitempty"`
	ActivityID  *uuid.UUID `json:"activityId,omitempty"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description,omitempty"`
	Date        time.Time  `json:"date"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
