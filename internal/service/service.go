package service

import (
	"context"
	"time"

	"travel_planner/internal/models"
	"travel_planner/internal/repository"
)

// ErrNotFound is re-exported so handlers need not import the repository layer.
var ErrNotFound = repository.ErrNotFound

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	ParseToken(accessToken string) (string, error)
}

// Profile exposes the caller's own account.
type Profile interface {
	GetProfile(ctx context.Context, uid string) (models.User, error)
	UpdateProfile(ctx context.Context, uid string, in ProfileUpdate) (models.User, error)
}

// Trips manages trips. An empty owner means the unscoped (legacy) surface.
type Trips interface {
	List(ctx context.Context, owner string) ([]models.Trip, error)
	Get(ctx context.Context, id, owner string) (models.Trip, error)
	Create(ctx context.Context, owner string, t models.Trip) (models.Trip, error)
	Update(ctx context.Context, id, owner string, p models.TripPatch) (models.Trip, error)
	Delete(ctx context.Context, id, owner string) error
}

// Expenses manages expenses. An empty owner means the unscoped (legacy) surface.
type Expenses interface {
	Add(ctx context.Context, e models.Expense) (models.Expense, error)
	List(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error)
	Get(ctx context.Context, id, owner string) (models.Expense, error)
	Update(ctx context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error)
	Delete(ctx context.Context, id, owner string) error
}

// Dashboard aggregates per-user totals.
type Dashboard interface {
	Summary(ctx context.Context, uid string) (models.Summary, error)
}

// Health reports whether the store answers.
type Health interface {
	Ping(ctx context.Context) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Profile
	Trips     Trips
	Expenses  Expenses
	Dashboard Dashboard
	Health    Health
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string, tokenTTL time.Duration) *Service {
	auth := NewAuthService(repos.Users, signingKey, tokenTTL)
	return &Service{
		Authorization: auth,
		Profile:       auth,
		Trips:         NewTripService(repos.Trips),
		Expenses:      NewExpenseService(repos.Expenses),
		Dashboard:     NewDashboardService(repos.Trips, repos.Expenses),
		Health:        repos.Health,
	}
}
