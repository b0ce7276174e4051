package repository

import (
	"context"
	"database/sql"
	"errors"

	"travel_planner/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no record matches the id (and owner, when scoped).
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key (user email or uid) is already taken.
	ErrDuplicate = errors.New("record already exists")
)

// Users persists accounts. Lookups return (nil, nil) when nothing matches.
type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, uid string, p models.UserPatch) (models.User, error)
}

// Trips persists trips. An empty owner disables ownership filtering.
type Trips interface {
	List(ctx context.Context, owner string) ([]models.Trip, error)
	Get(ctx context.Context, id, owner string) (models.Trip, error)
	Create(ctx context.Context, t models.Trip) (models.Trip, error)
	Update(ctx context.Context, id, owner string, p models.TripPatch) (models.Trip, error)
	Delete(ctx context.Context, id, owner string) error
}

// Expenses persists expenses. An empty owner disables ownership filtering.
type Expenses interface {
	List(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error)
	Get(ctx context.Context, id, owner string) (models.Expense, error)
	Create(ctx context.Context, e models.Expense) (models.Expense, error)
	Update(ctx context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error)
	Delete(ctx context.Context, id, owner string) error
}

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Users    Users
	Trips    Trips
	Expenses Expenses
	Health   Pinger
}

// NewMongoRepository wires the document-store implementations.
func NewMongoRepository(db *mongo.Database) *Repository {
	return &Repository{
		Users:    NewUserMongo(db),
		Trips:    NewTripMongo(db),
		Expenses: NewExpenseMongo(db),
		Health:   mongoPinger{client: db.Client()},
	}
}

// NewSQLiteRepository wires the embedded SQLite implementations.
func NewSQLiteRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Trips:    NewTripSQLite(db),
		Expenses: NewExpenseSQLite(db),
		Health:   sqlPinger{db: db},
	}
}
