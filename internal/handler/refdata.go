package handler

import (
	"net/http"

	"github.com/jeevamp6/travel-planner/internal/refdata"
)

func (s *Server) handleListCities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cities := refdata.FilterCities(refdata.CityFilter{
		Query:      q.Get("q"),
		Region:     q.Get("region"),
		Cost:       q.Get("cost"),
		Popularity: q.Get("popularity"),
	})
	writeJSON(w, http.StatusOK, cities)
}

func (s *Server) handleListAttractions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	attractions := refdata.FilterAttractions(q.Get("state"), q.Get("category"))
	writeJSON(w, http.StatusOK, attractions)
}

func (s *Server) handleListHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hotels := refdata.FilterHotels(q.Get("state"), q.Get("category"))
	writeJSON(w, http.StatusOK, hotels)
}

// handleSuggestAttractions returns the attractions along the trip's route,
// driven by the trip's origin, destination and travel mode.
func (s *Server) handleSuggestAttractions(w http.ResponseWriter, r *http.Request) {
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

	attractions := refdata.AttractionsAlongRoute(trip.Origin, trip.Destination, string(trip.TravelMode))
	writeJSON(w, http.StatusOK, attractions)
}

// handleSuggestHotels returns hotels grouped by state along the trip's
// route. States of the trip's selected attractions are always included so
// every planned sight has somewhere to stay nearby.
func (s *Server) handleSuggestHotels(w http.ResponseWriter, r *http.Request) {
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

	states := make([]string, 0, len(trip.SelectedAttractions))
	for _, a := range trip.SelectedAttractions {
		states = append(states, a.State)
	}

	groups := refdata.HotelsAlongRoute(trip.Origin, trip.Destination, states)
	writeJSON(w, http.StatusOK, groups)
}
