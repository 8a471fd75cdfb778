package handler

import "net/http"

func (s *Server) handleTripStats(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	stats, err := s.stats.TripStatistics(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := s.stats.UserStatistics(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
