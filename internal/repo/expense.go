package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/internal/store"
)

// ExpenseRepo defines the persistence operations for Expenses.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the stored record.
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// GetByID retrieves a single expense by primary key.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error)

	// ListByTrip returns all expenses for a trip. Order is unspecified.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)

	// Update overwrites an existing expense record.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	Update(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// Delete removes an expense by ID. Idempotent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// storeExpenseRepo is the object-store implementation of ExpenseRepo.
type storeExpenseRepo struct {
	st *store.Store
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided store.
func NewExpenseRepo(st *store.Store) ExpenseRepo {
	return &storeExpenseRepo{st: st}
}

func (r *storeExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	if err := r.st.Add(ctx, colExpenses, expense.ID.String(), expense); err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}

	var stored domain.Expense
	if err := r.st.Get(ctx, colExpenses, expense.ID.String(), &stored); err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return stored, nil
}

func (r *storeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	var expense domain.Expense
	if err := r.st.Get(ctx, colExpenses, id.String(), &expense); err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	return expense, nil
}

func (r *storeExpenseRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	var expenses []domain.Expense
	if err := r.st.GetByIndex(ctx, colExpenses, "tripId", tripID.String(), &expenses); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTrip: %w", err)
	}
	return expenses, nil
}

func (r *storeExpenseRepo) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	var existing domain.Expense
	if err := r.st.Get(ctx, colExpenses, expense.ID.String(), &existing); err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}

	if err := r.st.Put(ctx, colExpenses, expense.ID.String(), expense); err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	return expense, nil
}

func (r *storeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.st.Remove(ctx, colExpenses, id.String()); err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	return nil
}
