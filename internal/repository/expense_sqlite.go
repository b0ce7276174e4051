package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel_planner/internal/models"

	"github.com/google/uuid"
)

type ExpenseSQLite struct {
	db *sql.DB
}

func NewExpenseSQLite(db *sql.DB) *ExpenseSQLite {
	return &ExpenseSQLite{db: db}
}

var _ Expenses = (*ExpenseSQLite)(nil)

const (
	insertExpenseSQL = `INSERT INTO expenses (id, user_id, trip_id, amount, description, date) VALUES (?, ?, ?, ?, ?, ?)`
	selectExpenseSQL = `SELECT id, user_id, trip_id, amount, description, date FROM expenses`
)

func scanExpense(s rowScanner) (models.Expense, error) {
	var (
		e    models.Expense
		date time.Time
	)
	if err := s.Scan(&e.ID, &e.UserID, &e.TripID, &e.Amount, &e.Description, &date); err != nil {
		return models.Expense{}, err
	}
	e.Date = models.NewDate(date)
	return e, nil
}

func (r *ExpenseSQLite) List(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	var (
		conds []string
		args  []any
	)
	if f.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.TripID != "" {
		conds = append(conds, "trip_id = ?")
		args = append(args, f.TripID)
	}

	q := selectExpenseSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 32)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExpenseSQLite) Get(ctx context.Context, id, owner string) (models.Expense, error) {
	where, args := ownerClause(" WHERE id = ?", []any{id}, "user_id", owner)
	e, err := scanExpense(r.db.QueryRowContext(ctx, selectExpenseSQL+where, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrNotFound
		}
		return models.Expense{}, fmt.Errorf("select expense %q: %w", id, err)
	}
	return e, nil
}

func (r *ExpenseSQLite) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertExpenseSQL, e.ID, e.UserID, e.TripID, e.Amount, e.Description, e.Date.UTC())
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseSQLite) Update(ctx context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error) {
	var (
		sets []string
		args []any
	)
	if p.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *p.Amount)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, p.Date.UTC())
	}
	if p.TripID != nil {
		sets = append(sets, "trip_id = ?")
		args = append(args, *p.TripID)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id, owner)
	}
	where, args := ownerClause(" WHERE id = ?", append(args, id), "user_id", owner)

	res, err := r.db.ExecContext(ctx, "UPDATE expenses SET "+strings.Join(sets, ", ")+where, args...)
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense %q: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return models.Expense{}, err
	}
	return r.Get(ctx, id, owner)
}

func (r *ExpenseSQLite) Delete(ctx context.Context, id, owner string) error {
	where, args := ownerClause(" WHERE id = ?", []any{id}, "user_id", owner)
	res, err := r.db.ExecContext(ctx, "DELETE FROM expenses"+where, args...)
	if err != nil {
		return fmt.Errorf("delete expense %q: %w", id, err)
	}
	return requireAffected(res)
}
