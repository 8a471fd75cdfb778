package handler

import (
	"net/http"

	"github.com/jeevamp6/travel-planner/internal/service"
)

// handleConfirmBookings records a batch of accommodation bookings as
// expenses against the trip.
func (s *Server) handleConfirmBookings(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Bookings []service.BookingRequest `json:"bookings"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expenses, err := s.bookings.ConfirmBookings(r.Context(), tripID, req.Bookings)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expenses)
}
