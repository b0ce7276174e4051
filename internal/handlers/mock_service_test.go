package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"travel_planner/internal/models"
	"travel_planner/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

// mockAuth accepts tokens of the form "tok-<uid>".
type mockAuth struct {
	signUpRes service.AuthResult
	signUpErr error
	loginRes  service.AuthResult
	loginErr  error

	profile    models.User
	profileErr error

	lastSignUp    service.SignUpInput
	lastLogin     string
	lastParse     string
	lastProfileID string
	lastUpdate    service.ProfileUpdate
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpInput) (service.AuthResult, error) {
	m.lastSignUp = in
	return m.signUpRes, m.signUpErr
}

func (m *mockAuth) Login(_ context.Context, email, _ string) (service.AuthResult, error) {
	m.lastLogin = email
	return m.loginRes, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParse = token
	if len(token) > 4 && token[:4] == "tok-" {
		return token[4:], nil
	}
	return "", service.ErrInvalidToken
}

func (m *mockAuth) GetProfile(_ context.Context, uid string) (models.User, error) {
	m.lastProfileID = uid
	return m.profile, m.profileErr
}

func (m *mockAuth) UpdateProfile(_ context.Context, uid string, in service.ProfileUpdate) (models.User, error) {
	m.lastProfileID = uid
	m.lastUpdate = in
	return m.profile, m.profileErr
}

// mockTrips is an in-memory owner-aware trip store.
type mockTrips struct {
	trips []models.Trip
	err   error
	seq   int
}

func (m *mockTrips) List(_ context.Context, owner string) ([]models.Trip, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Trip
	for _, t := range m.trips {
		if owner == "" || t.UserUID == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTrips) find(id, owner string) int {
	for i, t := range m.trips {
		if t.ID == id && (owner == "" || t.UserUID == owner) {
			return i
		}
	}
	return -1
}

func (m *mockTrips) Get(_ context.Context, id, owner string) (models.Trip, error) {
	if m.err != nil {
		return models.Trip{}, m.err
	}
	i := m.find(id, owner)
	if i < 0 {
		return models.Trip{}, service.ErrNotFound
	}
	return m.trips[i], nil
}

func (m *mockTrips) Create(_ context.Context, owner string, t models.Trip) (models.Trip, error) {
	if m.err != nil {
		return models.Trip{}, m.err
	}
	if owner != "" {
		t.UserUID = owner
	}
	m.seq++
	t.ID = "trip-" + strconv.Itoa(m.seq)
	m.trips = append(m.trips, t)
	return t, nil
}

func (m *mockTrips) Update(_ context.Context, id, owner string, p models.TripPatch) (models.Trip, error) {
	if m.err != nil {
		return models.Trip{}, m.err
	}
	i := m.find(id, owner)
	if i < 0 {
		return models.Trip{}, service.ErrNotFound
	}
	if p.TripName != nil {
		m.trips[i].TripName = *p.TripName
	}
	if p.Destination != nil {
		m.trips[i].Destination = *p.Destination
	}
	return m.trips[i], nil
}

func (m *mockTrips) Delete(_ context.Context, id, owner string) error {
	if m.err != nil {
		return m.err
	}
	i := m.find(id, owner)
	if i < 0 {
		return service.ErrNotFound
	}
	m.trips = append(m.trips[:i], m.trips[i+1:]...)
	return nil
}

type mockExpenses struct {
	added      []models.Expense
	list       []models.Expense
	err        error
	lastFilter models.ExpenseFilter
	lastOwner  string
	lastPatch  models.ExpensePatch
}

func (m *mockExpenses) Add(_ context.Context, e models.Expense) (models.Expense, error) {
	if m.err != nil {
		return models.Expense{}, m.err
	}
	e.ID = "exp-1"
	m.added = append(m.added, e)
	return e, nil
}

func (m *mockExpenses) List(_ context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	m.lastFilter = f
	return m.list, m.err
}

func (m *mockExpenses) Get(_ context.Context, id, owner string) (models.Expense, error) {
	m.lastOwner = owner
	for _, e := range m.list {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Expense{}, service.ErrNotFound
}

func (m *mockExpenses) Update(_ context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error) {
	m.lastOwner = owner
	m.lastPatch = p
	if m.err != nil {
		return models.Expense{}, m.err
	}
	return models.Expense{ID: id, Amount: 1}, nil
}

func (m *mockExpenses) Delete(_ context.Context, id, owner string) error {
	m.lastOwner = owner
	if m.err != nil {
		return m.err
	}
	if id != "exp-1" {
		return service.ErrNotFound
	}
	return nil
}

// mockDashboard is read from the websocket goroutine, hence the lock.
type mockDashboard struct {
	mu      sync.Mutex
	sum     models.Summary
	err     error
	lastUID string
}

func (m *mockDashboard) Summary(_ context.Context, uid string) (models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUID = uid
	return m.sum, m.err
}

func (m *mockDashboard) caller() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastUID
}

type mockHealth struct{ err error }

func (m mockHealth) Ping(context.Context) error { return m.err }

var errBoom = errors.New("boom")

// ---- Shared Test Helpers ----

func newMockService() (*service.Service, *mockAuth, *mockTrips, *mockExpenses) {
	auth := &mockAuth{}
	trips := &mockTrips{}
	expenses := &mockExpenses{}
	return &service.Service{
		Authorization: auth,
		Profile:       auth,
		Trips:         trips,
		Expenses:      expenses,
		Dashboard:     &mockDashboard{},
		Health:        mockHealth{},
	}, auth, trips, expenses
}

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWith(s, Options{})
}

func newTestRouterWith(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
