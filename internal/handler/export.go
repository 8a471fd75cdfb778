package handler

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// handleExportTrip streams the trip's itinerary as a CSV download: one row
// per stop, trip fields repeated on every row, activity titles joined with
// commas inside a single cell.
func (s *Server) handleExportTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	rows, err := s.exports.ExportTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "trip-"+tripID.String()+".csv"))

	cw := csv.NewWriter(w)
	record := []string{
		"tripTitle", "origin", "destination", "startDate", "endDate",
		"city", "country", "arrivalDate", "departureDate", "notes", "activities",
	}
	if err := cw.Write(record); err != nil {
		slog.Error("failed to write CSV header", "error", err)
		return
	}

	for _, row := range rows {
		arrival, departure := "", ""
		if row.ArrivalDate != nil {
			arrival = row.ArrivalDate.Format("2006-01-02")
		}
		if row.DepartureDate != nil {
			departure = row.DepartureDate.Format("2006-01-02")
		}

		record = []string{
			row.TripTitle, row.Origin, row.Destination, row.StartDate, row.EndDate,
			row.City, row.Country, arrival, departure, row.StopNotes,
			strings.Join(row.Activities, ","),
		}
		if err := cw.Write(record); err != nil {
			slog.Error("failed to write CSV row", "error", err)
			return
		}
	}
	cw.Flush()
}
