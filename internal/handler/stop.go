package handler

import (
	"net/http"

	"github.com/jeevamp6/travel-planner/internal/domain"
)

type stopRequest struct {
	City          string      `json:"city"`
	Country       string      `json:"country"`
	ArrivalDate   domain.Date `json:"arrivalDate"`
	DepartureDate domain.Date `json:"departureDate"`
	Order         int         `json:"order"`
	Notes         string      `json:"notes"`
}

func (req stopRequest) toDomain() domain.Stop {
	return domain.Stop{
		City:          req.City,
		Country:       req.Country,
		ArrivalDate:   req.ArrivalDate.Time(),
		DepartureDate: req.DepartureDate.Time(),
		Order:         req.Order,
		Notes:         req.Notes,
	}
}

func (s *Server) handleCreateStop(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	var req stopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	stop := req.toDomain()
	stop.TripID = tripID
	created, err := s.stops.Create(r.Context(), stop)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListStops(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	stops, err := s.stops.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stops)
}

func (s *Server) handleGetStop(w http.ResponseWriter, r *http.Request) {
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeError(w, err)
		return
	}

	stop, err := s.ownedStop(r.Context(), stopID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stop)
}

func (s *Server) handleUpdateStop(w http.ResponseWriter, r *http.Request) {
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedStop(r.Context(), stopID); err != nil {
		writeError(w, err)
		return
	}

	var req stopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	stop := req.toDomain()
	stop.ID = stopID
	updated, err := s.stops.Update(r.Context(), stop)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteStop(w http.ResponseWriter, r *http.Request) {
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedStop(r.Context(), stopID); err != nil {
		writeError(w, err)
		return
	}

	if err := s.stops.Delete(r.Context(), stopID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
