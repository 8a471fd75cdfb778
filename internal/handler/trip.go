package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jeevamp6/travel-planner/internal/domain"
)

// tripRequest is the mutable subset of a trip accepted from clients.
// Identity and derived fields (id, userId, shareId, actualSpent) are
// server-assigned and not accepted here.
type tripRequest struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	StartDate     domain.Date       `json:"startDate"`
	EndDate       domain.Date       `json:"endDate"`
	TotalBudget   float64           `json:"totalBudget"`
	IsPublic      bool              `json:"isPublic"`
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	TravelMode    domain.TravelMode `json:"travelMode"`
	CoverPhoto    string            `json:"coverPhoto"`
	AttractionIDs []int             `json:"attractionIds"`
}

func (req tripRequest) toDomain() domain.Trip {
	return domain.Trip{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate.Time(),
		EndDate:     req.EndDate.Time(),
		TotalBudget: req.TotalBudget,
		IsPublic:    req.IsPublic,
		Origin:      req.Origin,
		Destination: req.Destination,
		TravelMode:  req.TravelMode,
		CoverPhoto:  req.CoverPhoto,
	}
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	trip, err := s.trips.Create(r.Context(), userID, req.toDomain(), req.AttractionIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	trips, err := s.trips.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}

	trip, err := s.ownedTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	trip := req.toDomain()
	trip.ID = tripID
	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	if err := s.trips.Delete(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSharedTrip(w http.ResponseWriter, r *http.Request) {
	// No auth and no ownership check; the service hides non-public trips.
	trip, err := s.trips.GetByShareID(r.Context(), chi.URLParam(r, "shareID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
