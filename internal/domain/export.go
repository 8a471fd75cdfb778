package domain

import "time"

// ExportRow is a single row in a trip's full-data export.
// It is a flat, denormalized view: one row per stop, with trip fields
// repeated for every stop on that trip. A trip with no stops yields one row
// with zero values for all stop fields.
//
// Activities is a slice of activity titles for the stop, in creation order.
// Callers that need a joined string (e.g. CSV) should join with ",".
type ExportRow struct {
	// Trip fields; repeated for every stop on the trip.
	TripID      string
	TripTitle   string
	Origin      string
	Destination string
	StartDate   string // "2006-01-02" formatted date
	EndDate     string

	// Stop fields; zero values when the trip has no stops.
	City          string
	Country       string
	ArrivalDate   *time.Time
	DepartureDate *time.Time
	StopNotes     string

	// Activities; titles of all activities planned at this stop.
	Activities []string
}
