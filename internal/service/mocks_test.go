package service

import (
	"context"

	"travel_planner/internal/models"
	"travel_planner/internal/repository"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(u models.User) (models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByUIDFn   func(uid string) (*models.User, error)
	UpdateFn     func(uid string, p models.UserPatch) (models.User, error)

	created []models.User
	patches []models.UserPatch
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) (models.User, error) {
	m.created = append(m.created, u)
	if m.CreateFn == nil {
		u.ID = "generated"
		return u, nil
	}
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByUID(_ context.Context, uid string) (*models.User, error) {
	if m.GetByUIDFn == nil {
		return nil, nil
	}
	return m.GetByUIDFn(uid)
}

func (m *mockUserRepo) Update(_ context.Context, uid string, p models.UserPatch) (models.User, error) {
	m.patches = append(m.patches, p)
	return m.UpdateFn(uid, p)
}

// mockTripRepo records calls and replays canned results.
type mockTripRepo struct {
	trips     []models.Trip
	err       error
	created   []models.Trip
	updates   int
	getCalls  int
	lastOwner string
}

func (m *mockTripRepo) List(_ context.Context, owner string) ([]models.Trip, error) {
	m.lastOwner = owner
	return m.trips, m.err
}

func (m *mockTripRepo) Get(_ context.Context, id, owner string) (models.Trip, error) {
	m.getCalls++
	m.lastOwner = owner
	for _, t := range m.trips {
		if t.ID == id && (owner == "" || t.UserUID == owner) {
			return t, nil
		}
	}
	return models.Trip{}, repository.ErrNotFound
}

func (m *mockTripRepo) Create(_ context.Context, t models.Trip) (models.Trip, error) {
	m.created = append(m.created, t)
	t.ID = "t-new"
	return t, m.err
}

func (m *mockTripRepo) Update(_ context.Context, id, owner string, p models.TripPatch) (models.Trip, error) {
	m.updates++
	m.lastOwner = owner
	return models.Trip{ID: id, UserUID: owner}, m.err
}

func (m *mockTripRepo) Delete(_ context.Context, id, owner string) error {
	m.lastOwner = owner
	return m.err
}

type mockExpenseRepo struct {
	expenses   []models.Expense
	err        error
	created    []models.Expense
	updates    int
	lastFilter models.ExpenseFilter
}

func (m *mockExpenseRepo) List(_ context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	m.lastFilter = f
	return m.expenses, m.err
}

func (m *mockExpenseRepo) Get(_ context.Context, id, owner string) (models.Expense, error) {
	for _, e := range m.expenses {
		if e.ID == id && (owner == "" || e.UserID == owner) {
			return e, nil
		}
	}
	return models.Expense{}, repository.ErrNotFound
}

func (m *mockExpenseRepo) Create(_ context.Context, e models.Expense) (models.Expense, error) {
	m.created = append(m.created, e)
	e.ID = "e-new"
	return e, m.err
}

func (m *mockExpenseRepo) Update(_ context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error) {
	m.updates++
	return models.Expense{ID: id, UserID: owner}, m.err
}

func (m *mockExpenseRepo) Delete(_ context.Context, id, owner string) error {
	return m.err
}
