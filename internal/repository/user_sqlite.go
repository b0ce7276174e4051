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
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, uid, email, display_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, uid, email, display_name, password_hash, created_at, updated_at FROM users`

	selectUserByEmailSQL = selectUserSQL + ` WHERE email = ?`
	selectUserByUIDSQL   = selectUserSQL + ` WHERE uid = ?`
)

// isUniqueViolation reports a UNIQUE constraint failure from the sqlite driver.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *UserSQLite) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt, u.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.UID, u.Email, u.DisplayName, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("insert user %q: %w", u.Email, ErrDuplicate)
		}
		return models.User{}, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return u, nil
}

func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.queryOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserSQLite) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return r.queryOne(ctx, selectUserByUIDSQL, uid)
}

// queryOne returns (nil, nil) if not found.
func (r *UserSQLite) queryOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.UID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", arg, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func (r *UserSQLite) Update(ctx context.Context, uid string, p models.UserPatch) (models.User, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if p.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *p.DisplayName)
	}
	if p.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *p.PasswordHash)
	}
	args = append(args, uid)

	res, err := r.db.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE uid = ?`, args...)
	if err != nil {
		return models.User{}, fmt.Errorf("update user %q: %w", uid, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.User{}, fmt.Errorf("update user %q: %w", uid, err)
	} else if n == 0 {
		return models.User{}, ErrNotFound
	}

	u, err := r.GetByUID(ctx, uid)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}
