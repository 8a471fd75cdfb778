package handler

import (
	"net/http"

	"github.com/jeevamp6/travel-planner/internal/domain"
)

type activityRequest struct {
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Category      domain.ActivityCategory `json:"category"`
	Date          domain.Date             `json:"date"`
	EstimatedCost float64                 `json:"estimatedCost"`
	ActualCost    float64                 `json:"actualCost"`
	Duration      int                     `json:"duration"`
	Location      string                  `json:"location"`
	IsBooked      bool                    `json:"isBooked"`
}

func (req activityRequest) toDomain() domain.Activity {
	return domain.Activity{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Date:          req.Date.Time(),
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Duration:      req.Duration,
		Location:      req.Location,
		IsBooked:      req.IsBooked,
	}
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedStop(r.Context(), stopID); err != nil {
		writeError(w, err)
		return
	}

	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity := req.toDomain()
	activity.StopID = stopID
	created, err := s.activities.Create(r.Context(), activity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListStopActivities(w http.ResponseWriter, r *http.Request) {
	stopID, err := pathUUID(r, "stopID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedStop(r.Context(), stopID); err != nil {
		writeError(w, err)
		return
	}

	activities, err := s.activities.ListByStop(r.Context(), stopID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleListTripActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	activities, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}

	activity, err := s.ownedActivity(r.Context(), activityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedActivity(r.Context(), activityID); err != nil {
		writeError(w, err)
		return
	}

	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	activity := req.toDomain()
	activity.ID = activityID
	updated, err := s.activities.Update(r.Context(), activity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedActivity(r.Context(), activityID); err != nil {
		writeError(w, err)
		return
	}

	if err := s.activities.Delete(r.Context(), activityID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
