package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelMode is how the traveller gets from origin to destination.
type TravelMode string

const (
	TravelModeBike   TravelMode = "bike"
	TravelModeCar    TravelMode = "car"
	TravelModeTrain  TravelMode = "train"
	TravelModeFlight TravelMode = "flight"
	TravelModeBus    TravelMode = "bus"
	TravelModeMixed  TravelMode = "mixed"
)

// Valid reports whether m is one of the defined travel modes.
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeBike, TravelModeCar, TravelModeTrain, TravelModeFlight, TravelModeBus, TravelModeMixed:
		return true
	}
	return false
}

// AttractionSnapshot is a copy of a catalog attraction taken when the trip
// is created. It is a snapshot, not a live reference; later catalog changes
// do not affect existing trips.
type AttractionSnapshot struct {
	CatalogID int    `json:"catalogId"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	State     string `json:"state"`
	Category  string `json:"category"`
}

// Trip is the top-level aggregate: stops, activities and expenses all belong
// to a trip. ShareID is a unique secondary key used for public share links.
//
// ActualSpent is a derived cache: the sum of the trip's activities' estimated
// costs, recomputed by the trip service after every activity mutation. It is
// deliberately distinct from the expense-collection total reported by the
// stats service.
type Trip struct {
	ID                  uuid.UUID            `json:"id"`
	UserID              uuid.UUID            `json:"userId"`
	Title               string               `json:"title"`
	Description         string               `json:"description,omitempty"`
	StartDate           time.Time            `json:"startDate"`
	EndDate             time.Time            `json:"endDate"`
	TotalBudget         float64              `json:"totalBudget"`
	ActualSpent         float64              `json:"actualSpent"`
	IsPublic            bool                 `json:"isPublic"`
	ShareID             string               `json:"shareId"`
	Origin              string               `json:"origin"`
	Destination         string               `json:"destination"`
	TravelMode          TravelMode           `json:"travelMode"`
	CoverPhoto          string               `json:"coverPhoto,omitempty"`
	SelectedAttractions []AttractionSnapshot `json:"selectedAttractions,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}
