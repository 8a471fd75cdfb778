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

// ExpenseService implements business logic for Expense operations.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Create validates the expense, verifies the parent trip exists, then
// persists. Expense mutations never touch the trip's ActualSpent; that
// cache tracks activity estimates only.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *ExpenseService) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, expense.TripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}

	now := time.Now().UTC()
	expense.ID = uuid.New()
	expense.CreatedAt = now
	expense.UpdatedAt = now
	if expense.Date.IsZero() {
		expense.Date = now
	}

	result, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single expense by ID.
// Returns domain.ErrNotFound if no expense with that ID exists.
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	result, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns all expenses recorded against a trip.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	expenses, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTrip: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// Update validates and persists changes to an existing expense.
// The parent trip and creation time are carried over from the stored record.
func (s *ExpenseService) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, err
	}

	existing, err := s.expenses.GetByID(ctx, expense.ID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	expense.TripID = existing.TripID
	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = time.Now().UTC()

	result, err := s.expenses.Update(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// validateExpense enforces business rules common to both Create and Update.
//   - Category must be non-empty.
//   - Amount must not be negative.
func validateExpense(expense domain.Expense) error {
	if strings.TrimSpace(expense.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if expense.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	return nil
}
