package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/repo"
)

// StatsService aggregates per-trip and per-user statistics from the other
// collections. It never writes.
type StatsService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
	expenses   repo.ExpenseRepo

	// now is injectable so tests can pin the upcoming/past boundary.
	now func() time.Time
}

// NewStatsService constructs a StatsService backed by the provided repos.
func NewStatsService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo, expenses repo.ExpenseRepo) *StatsService {
	return &StatsService{
		trips:      trips,
		stops:      stops,
		activities: activities,
		expenses:   expenses,
		now:        time.Now,
	}
}

// NewStatsServiceWithNow is NewStatsService with an injectable clock.
// Tests use it to pin the upcoming/past boundary.
func NewStatsServiceWithNow(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo, expenses repo.ExpenseRepo, now func() time.Time) *StatsService {
	s := NewStatsService(trips, stops, activities, expenses)
	s.now = now
	return s
}

// TripStatistics computes the summary for one trip.
// TotalExpenses sums the expense collection only; activity estimates live on
// the trip's ActualSpent and are never mixed in here. Remaining is budget
// minus expenses and may go negative.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *StatsService) TripStatistics(ctx context.Context, tripID uuid.UUID) (domain.TripStatistics, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripStatistics{}, fmt.Errorf("service.StatsService.TripStatistics: %w", err)
	}

	stops, err := s.stops.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripStatistics{}, fmt.Errorf("service.StatsService.TripStatistics: %w", err)
	}
	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripStatistics{}, fmt.Errorf("service.StatsService.TripStatistics: %w", err)
	}
	expenses, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripStatistics{}, fmt.Errorf("service.StatsService.TripStatistics: %w", err)
	}

	byCategory := map[string]float64{}
	var total float64
	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	return domain.TripStatistics{
		Trip:               trip,
		TotalStops:         len(stops),
		TotalActivities:    len(activities),
		TotalExpenses:      total,
		Budget:             trip.TotalBudget,
		Remaining:          trip.TotalBudget - total,
		ExpensesByCategory: byCategory,
	}, nil
}

// UserStatistics computes the summary across all of a user's trips.
// Countries and cities are counted distinctly, case-insensitively: visiting
// "Paris" on three trips is one city. TotalSpent sums every trip's expense
// collection. A trip is upcoming when it starts strictly after now and past
// when it ends strictly before now; a trip spanning now is neither.
func (s *StatsService) UserStatistics(ctx context.Context, userID uuid.UUID) (domain.UserStatistics, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return domain.UserStatistics{}, fmt.Errorf("service.StatsService.UserStatistics: %w", err)
	}

	now := s.now()
	countries := map[string]bool{}
	cities := map[string]bool{}
	stats := domain.UserStatistics{TotalTrips: len(trips)}

	for _, trip := range trips {
		if trip.StartDate.After(now) {
			stats.UpcomingTrips++
		}
		if trip.EndDate.Before(now) {
			stats.PastTrips++
		}

		stops, err := s.stops.ListByTrip(ctx, trip.ID)
		if err != nil {
			return domain.UserStatistics{}, fmt.Errorf("service.StatsService.UserStatistics: %w", err)
		}
		for _, stop := range stops {
			if c := normalizePlace(stop.Country); c != "" {
				countries[c] = true
			}
			if c := normalizePlace(stop.City); c != "" {
				cities[c] = true
			}
		}

		expenses, err := s.expenses.ListByTrip(ctx, trip.ID)
		if err != nil {
			return domain.UserStatistics{}, fmt.Errorf("service.StatsService.UserStatistics: %w", err)
		}
		for _, e := range expenses {
			stats.TotalSpent += e.Amount
		}
	}

	stats.TotalCountries = len(countries)
	stats.TotalCities = len(cities)
	return stats, nil
}

func normalizePlace(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
