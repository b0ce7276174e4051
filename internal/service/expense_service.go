package service

import (
	"context"
	"strings"

	"travel_planner/internal/models"
	"travel_planner/internal/repository"
)

type ExpenseService struct {
	repo repository.Expenses
}

func NewExpenseService(repo repository.Expenses) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Add records an expense. The caller sets UserID; handlers stamp it from the token.
func (s *ExpenseService) Add(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.Description = strings.TrimSpace(e.Description)
	e.TripID = strings.TrimSpace(e.TripID)
	if e.UserID == "" || e.Amount < 0 || e.Description == "" || e.Date.IsZero() {
		return models.Expense{}, ErrInvalidExpense
	}
	e.ID = ""
	return s.repo.Create(ctx, e)
}

func (s *ExpenseService) List(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	return s.repo.List(ctx, f)
}

func (s *ExpenseService) Get(ctx context.Context, id, owner string) (models.Expense, error) {
	return s.repo.Get(ctx, id, owner)
}

func (s *ExpenseService) Update(ctx context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error) {
	if p.Amount != nil && *p.Amount < 0 {
		return models.Expense{}, ErrInvalidExpense
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return models.Expense{}, ErrInvalidExpense
	}
	if p.Empty() {
		return s.repo.Get(ctx, id, owner)
	}
	return s.repo.Update(ctx, id, owner, p)
}

func (s *ExpenseService) Delete(ctx context.Context, id, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
