package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
)

type expenseRequest struct {
	StopID      *uuid.UUID  `json:"stopId"`
	ActivityID  *uuid.UUID  `json:"activityId"`
	Category    string      `json:"category"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Date        domain.Date `json:"date"`
}

func (req expenseRequest) toDomain() domain.Expense {
	return domain.Expense{
		StopID:      req.StopID,
		ActivityID:  req.ActivityID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date.Time(),
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense := req.toDomain()
	expense.TripID = tripID
	created, err := s.expenses.Create(r.Context(), expense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedTrip(r.Context(), tripID); err != nil {
		writeError(w, err)
		return
	}

	expenses, err := s.expenses.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := pathUUID(r, "expenseID")
	if err != nil {
		writeError(w, err)
		return
	}

	expense, err := s.ownedExpense(r.Context(), expenseID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := pathUUID(r, "expenseID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedExpense(r.Context(), expenseID); err != nil {
		writeError(w, err)
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense := req.toDomain()
	expense.ID = expenseID
	updated, err := s.expenses.Update(r.Context(), expense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := pathUUID(r, "expenseID")
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := s.ownedExpense(r.Context(), expenseID); err != nil {
		writeError(w, err)
		return
	}

	if err := s.expenses.Delete(r.Context(), expenseID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
