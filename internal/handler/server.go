// Package handler exposes the Travel Planner services over HTTP. Handlers
// decode and validate transport concerns (JSON bodies, path params,
// ownership of the addressed resource) and delegate everything else to the
// service layer.
package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/auth"
	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/service"
)

// Server bundles the services behind the HTTP API.
type Server struct {
	auths      *service.AuthService
	trips      *service.TripService
	stops      *service.StopService
	activities *service.ActivityService
	expenses   *service.ExpenseService
	bookings   *service.BookingService
	stats      *service.StatsService
	exports    *service.ExportService
	tokens     *auth.TokenManager
}

// NewServer constructs a Server from its services.
func NewServer(
	auths *service.AuthService,
	trips *service.TripService,
	stops *service.StopService,
	activities *service.ActivityService,
	expenses *service.ExpenseService,
	bookings *service.BookingService,
	stats *service.StatsService,
	exports *service.ExportService,
	tokens *auth.TokenManager,
) *Server {
	return &Server{
		auths:      auths,
		trips:      trips,
		stops:      stops,
		activities: activities,
		expenses:   expenses,
		bookings:   bookings,
		stats:      stats,
		exports:    exports,
		tokens:     tokens,
	}
}

// Routes registers every endpoint on r. Reference data and share links are
// public; everything else requires a Bearer token.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/share/{shareID}", s.handleGetSharedTrip)

		r.Get("/cities", s.handleListCities)
		r.Get("/attractions", s.handleListAttractions)
		r.Get("/hotels", s.handleListHotels)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(s.tokens))

			r.Get("/auth/me", s.handleMe)
			r.Get("/stats", s.handleUserStats)

			r.Route("/trips", func(r chi.Router) {
				r.Get("/", s.handleListTrips)
				r.Post("/", s.handleCreateTrip)

				r.Route("/{tripID}", func(r chi.Router) {
					r.Get("/", s.handleGetTrip)
					r.Put("/", s.handleUpdateTrip)
					r.Delete("/", s.handleDeleteTrip)

					r.Get("/stats", s.handleTripStats)
					r.Get("/export", s.handleExportTrip)
					r.Get("/suggestions/attractions", s.handleSuggestAttractions)
					r.Get("/suggestions/hotels", s.handleSuggestHotels)
					r.Post("/bookings", s.handleConfirmBookings)

					r.Get("/stops", s.handleListStops)
					r.Post("/stops", s.handleCreateStop)
					r.Get("/activities", s.handleListTripActivities)
					r.Get("/expenses", s.handleListExpenses)
					r.Post("/expenses", s.handleCreateExpense)
				})
			})

			r.Route("/stops/{stopID}", func(r chi.Router) {
				r.Get("/", s.handleGetStop)
				r.Put("/", s.handleUpdateStop)
				r.Delete("/", s.handleDeleteStop)
				r.Get("/activities", s.handleListStopActivities)
				r.Post("/activities", s.handleCreateActivity)
			})

			r.Route("/activities/{activityID}", func(r chi.Router) {
				r.Get("/", s.handleGetActivity)
				r.Put("/", s.handleUpdateActivity)
				r.Delete("/", s.handleDeleteActivity)
			})

			r.Route("/expenses/{expenseID}", func(r chi.Router) {
				r.Get("/", s.handleGetExpense)
				r.Put("/", s.handleUpdateExpense)
				r.Delete("/", s.handleDeleteExpense)
			})
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a valid UUID", domain.ErrValidation, name)
	}
	return id, nil
}

// currentUserID returns the authenticated caller's id. RequireAuth
// guarantees a valid value on protected routes.
func currentUserID(ctx context.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.UserID(ctx))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user identity", domain.ErrNotFound)
	}
	return id, nil
}

// ownedTrip loads a trip and verifies the caller owns it. Trips belonging
// to someone else report not-found, never forbidden, so ids cannot be
// probed for existence.
func (s *Server) ownedTrip(ctx context.Context, tripID uuid.UUID) (domain.Trip, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return domain.Trip{}, err
	}
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	if trip.UserID != userID {
		return domain.Trip{}, fmt.Errorf("handler: trip owned by another user: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// ownedStop loads a stop and verifies the caller owns its trip.
func (s *Server) ownedStop(ctx context.Context, stopID uuid.UUID) (domain.Stop, error) {
	stop, err := s.stops.GetByID(ctx, stopID)
	if err != nil {
		return domain.Stop{}, err
	}
	if _, err := s.ownedTrip(ctx, stop.TripID); err != nil {
		return domain.Stop{}, err
	}
	return stop, nil
}

// ownedActivity loads an activity and verifies the caller owns its trip.
func (s *Server) ownedActivity(ctx context.Context, activityID uuid.UUID) (domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, err
	}
	if _, err := s.ownedTrip(ctx, activity.TripID); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

// ownedExpense loads an expense and verifies the caller owns its trip.
func (s *Server) ownedExpense(ctx context.Context, expenseID uuid.UUID) (domain.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, expenseID)
	if err != nil {
		return domain.Expense{}, err
	}
	if _, err := s.ownedTrip(ctx, expense.TripID); err != nil {
		return domain.Expense{}, err
	}
	return expense, nil
}
