package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

// ExportService flattens a trip into denormalized rows for download.
type ExportService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo) *ExportService {
	return &ExportService{trips: trips, stops: stops, activities: activities}
}

// ExportTrip returns one row per stop in itinerary order, trip fields
// repeated on every row. A trip with no stops yields a single row carrying
// only the trip fields, so the export is never empty.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) ExportTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.ExportTrip: %w", err)
	}

	stops, err := s.stops.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.ExportTrip: %w", err)
	}

	base := domain.ExportRow{
		TripID:      trip.ID.String(),
		TripTitle:   trip.Title,
		Origin:      trip.Origin,
		Destination: trip.Destination,
		StartDate:   trip.StartDate.Format("2006-01-02"),
		EndDate:     trip.EndDate.Format("2006-01-02"),
	}

	if len(stops) == 0 {
		return []domain.ExportRow{base}, nil
	}

	rows := make([]domain.ExportRow, 0, len(stops))
	for _, stop := range stops {
		activities, err := s.activities.ListByStop(ctx, stop.ID)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.ExportTrip: %w", err)
		}

		titles := make([]string, 0, len(activities))
		for _, a := range activities {
			titles = append(titles, a.Title)
		}

		row := base
		row.City = stop.City
		row.Country = stop.Country
		arrival, departure := stop.ArrivalDate, stop.DepartureDate
		row.ArrivalDate = &arrival
		row.DepartureDate = &departure
		row.StopNotes = stop.Notes
		row.Activities = titles
		rows = append(rows, row)
	}
	return rows, nil
}
