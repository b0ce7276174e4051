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

type TripSQLite struct {
	db *sql.DB
}

func NewTripSQLite(db *sql.DB) *TripSQLite {
	return &TripSQLite{db: db}
}

var _ Trips = (*TripSQLite)(nil)

const (
	insertTripSQL = `INSERT INTO trips (id, trip_name, destination, start_date, end_date, user_uid, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectTripSQL = `SELECT id, trip_name, destination, start_date, end_date, user_uid, created_at, updated_at FROM trips`
)

// ownerClause appends "AND <col> = ?" when owner is set.
func ownerClause(where string, args []any, col, owner string) (string, []any) {
	if owner == "" {
		return where, args
	}
	return where + " AND " + col + " = ?", append(args, owner)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(s rowScanner) (models.Trip, error) {
	var (
		t          models.Trip
		start, end time.Time
	)
	if err := s.Scan(&t.ID, &t.TripName, &t.Destination, &start, &end, &t.UserUID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return models.Trip{}, err
	}
	t.StartDate = models.NewDate(start)
	t.EndDate = models.NewDate(end)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *TripSQLite) List(ctx context.Context, owner string) ([]models.Trip, error) {
	q, args := selectTripSQL, []any{}
	if owner != "" {
		q += " WHERE user_uid = ?"
		args = append(args, owner)
	}
	q += " ORDER BY start_date ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select trips: %w", err)
	}
	defer rows.Close()

	out := make([]models.Trip, 0, 16)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TripSQLite) Get(ctx context.Context, id, owner string) (models.Trip, error) {
	where, args := ownerClause(" WHERE id = ?", []any{id}, "user_uid", owner)
	t, err := scanTrip(r.db.QueryRowContext(ctx, selectTripSQL+where, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, ErrNotFound
		}
		return models.Trip{}, fmt.Errorf("select trip %q: %w", id, err)
	}
	return t, nil
}

func (r *TripSQLite) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt, t.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx, insertTripSQL,
		t.ID, t.TripName, t.Destination, t.StartDate.UTC(), t.EndDate.UTC(), t.UserUID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return models.Trip{}, fmt.Errorf("insert trip: %w", err)
	}
	return t, nil
}

func (r *TripSQLite) Update(ctx context.Context, id, owner string, p models.TripPatch) (models.Trip, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if p.TripName != nil {
		sets = append(sets, "trip_name = ?")
		args = append(args, *p.TripName)
	}
	if p.Destination != nil {
		sets = append(sets, "destination = ?")
		args = append(args, *p.Destination)
	}
	if p.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, p.StartDate.UTC())
	}
	if p.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, p.EndDate.UTC())
	}
	where, args := ownerClause(" WHERE id = ?", append(args, id), "user_uid", owner)

	res, err := r.db.ExecContext(ctx, "UPDATE trips SET "+strings.Join(sets, ", ")+where, args...)
	if err != nil {
		return models.Trip{}, fmt.Errorf("update trip %q: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return models.Trip{}, err
	}
	return r.Get(ctx, id, owner)
}

func (r *TripSQLite) Delete(ctx context.Context, id, owner string) error {
	where, args := ownerClause(" WHERE id = ?", []any{id}, "user_uid", owner)
	res, err := r.db.ExecContext(ctx, "DELETE FROM trips"+where, args...)
	if err != nil {
		return fmt.Errorf("delete trip %q: %w", id, err)
	}
	return requireAffected(res)
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
