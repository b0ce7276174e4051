package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"travel_planner/internal/config"
	"travel_planner/internal/logger"
	"travel_planner/internal/models"
	"travel_planner/internal/repository"
	"travel_planner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const e2eSecret = "e2e-secret-key"

func newSQLiteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repos, closeFn, err := repository.Open(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "travel.db"),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = closeFn(context.Background()) })

	gin.SetMode(gin.TestMode)
	h := NewHandler(service.NewService(repos, e2eSecret, 24*time.Hour), logger.Nop(), Options{})
	return h.InitRoutes()
}

func signUpUser(t *testing.T, r http.Handler, email string) service.AuthResult {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/signup", `{"email":"`+email+`","password":"hunter22"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: %d %s", email, w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("password leaked in signup response: %s", w.Body.String())
	}
	var res service.AuthResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode signup: %v", err)
	}
	return res
}

func TestE2E_SignUpTokenAndLogin(t *testing.T) {
	r := newSQLiteRouter(t)
	res := signUpUser(t, r, "alice@example.com")

	claims := &service.Claims{}
	tok, err := jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(e2eSecret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token not decodable with the shared secret: %v", err)
	}
	if claims.UID != res.User.UID || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != 24*time.Hour {
		t.Fatalf("expected 24h lifetime, got %v", ttl)
	}

	w := doRequest(r, http.MethodPost, "/login", `{"email":"alice@example.com","password":"hunter22"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("password leaked in login response: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong"}`, nil)
	if w.Code != http.StatusBadRequest || errorOf(t, w) != errInvalidCredentials {
		t.Fatalf("wrong password: %d %s", w.Code, w.Body.String())
	}

	// duplicate signup is rejected and the first credentials still work
	w = doRequest(r, http.MethodPost, "/signup", `{"email":"alice@example.com","password":"other"}`, nil)
	if w.Code != http.StatusBadRequest || errorOf(t, w) != errUserExists {
		t.Fatalf("duplicate signup: %d %s", w.Code, w.Body.String())
	}
	w = doRequest(r, http.MethodPost, "/login", `{"email":"alice@example.com","password":"hunter22"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first credentials must survive a duplicate signup, got %d", w.Code)
	}
}

func TestE2E_TripOwnership(t *testing.T) {
	r := newSQLiteRouter(t)
	alice := signUpUser(t, r, "alice@example.com")
	bob := signUpUser(t, r, "bob@example.com")

	trip := createTrip(t, r, alice.Token)
	if trip.UserUID != alice.User.UID || trip.ID == "" {
		t.Fatalf("unexpected created trip: %+v", trip)
	}

	w := doRequest(r, http.MethodGet, "/trips/"+trip.ID, "", authHeader(alice.Token))
	var env tripEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	if w.Code != http.StatusOK || env.Trip.TripName != "Paris" || env.Trip.Destination != "France" ||
		env.Trip.StartDate.String() != "2025-06-01" || env.Trip.EndDate.String() != "2025-06-10" ||
		env.Trip.UserUID != alice.User.UID {
		t.Fatalf("round trip mismatch: %d %+v", w.Code, env.Trip)
	}

	w = doRequest(r, http.MethodGet, "/trips/"+trip.ID, "", authHeader(bob.Token))
	if w.Code != http.StatusNotFound {
		t.Fatalf("bob fetching alice's trip: expected 404, got %d", w.Code)
	}
	w = doRequest(r, http.MethodGet, "/trips", "", authHeader(bob.Token))
	if w.Body.String() != "[]" {
		t.Fatalf("bob's list must be empty, got %s", w.Body.String())
	}

	w = doRequest(r, http.MethodDelete, "/trips/does-not-exist", "", authHeader(alice.Token))
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete of unknown id: expected 404, got %d", w.Code)
	}
	var list []models.Trip
	w = doRequest(r, http.MethodGet, "/trips", "", authHeader(alice.Token))
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("failed delete must leave the collection unchanged, got %d trips", len(list))
	}
}

func TestE2E_SingleDatePatchKeepsRangeOrdered(t *testing.T) {
	r := newSQLiteRouter(t)
	alice := signUpUser(t, r, "alice@example.com")
	trip := createTrip(t, r, alice.Token)

	w := doRequest(r, http.MethodPut, "/trips/"+trip.ID, `{"endDate":"2025-05-01"}`, authHeader(alice.Token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("end before stored start: expected 400, got %d %s", w.Code, w.Body.String())
	}
	w = doRequest(r, http.MethodPut, "/trips/"+trip.ID, `{"startDate":"2025-07-01"}`, authHeader(alice.Token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("start after stored end: expected 400, got %d %s", w.Code, w.Body.String())
	}

	var env tripEnvelope
	w = doRequest(r, http.MethodGet, "/trips/"+trip.ID, "", authHeader(alice.Token))
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	if env.Trip.StartDate.String() != "2025-06-01" || env.Trip.EndDate.String() != "2025-06-10" {
		t.Fatalf("rejected patches must not change the trip: %+v", env.Trip)
	}

	w = doRequest(r, http.MethodPut, "/trips/"+trip.ID, `{"endDate":"2025-06-15"}`, authHeader(alice.Token))
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	if w.Code != http.StatusOK || env.Trip.EndDate.String() != "2025-06-15" {
		t.Fatalf("valid single-date patch: %d %s", w.Code, w.Body.String())
	}
}

func TestE2E_MultibytePasswordOverBcryptLimit(t *testing.T) {
	r := newSQLiteRouter(t)
	long := strings.Repeat("é", 40)

	w := doRequest(r, http.MethodPost, "/signup", `{"email":"erin@example.com","password":"`+long+`"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("signup: expected 400, got %d %s", w.Code, w.Body.String())
	}

	alice := signUpUser(t, r, "alice@example.com")
	w = doRequest(r, http.MethodPut, "/me", `{"password":"`+long+`"}`, authHeader(alice.Token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("profile update: expected 400, got %d %s", w.Code, w.Body.String())
	}
}

func TestE2E_ExpensesAndSummary(t *testing.T) {
	r := newSQLiteRouter(t)
	alice := signUpUser(t, r, "alice@example.com")

	for _, body := range []string{
		`{"amount":20,"description":"Taxi","date":"2025-06-02"}`,
		`{"amount":5.5,"description":"Coffee","date":"2025-06-03"}`,
	} {
		if w := doRequest(r, http.MethodPost, "/expenses/add", body, authHeader(alice.Token)); w.Code != http.StatusCreated {
			t.Fatalf("add expense: %d %s", w.Code, w.Body.String())
		}
	}

	var sum models.Summary
	w := doRequest(r, http.MethodGet, "/summary", "", authHeader(alice.Token))
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil || w.Code != http.StatusOK {
		t.Fatalf("summary: %d %s", w.Code, w.Body.String())
	}
	if sum.ExpenseCount != 2 || sum.ExpenseTotal != 25.5 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestE2E_ExpiredTokenIs401(t *testing.T) {
	r := newSQLiteRouter(t)
	past := time.Now().Add(-48 * time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(24 * time.Hour)),
		},
		UID: "someone",
	}).SignedString([]byte(e2eSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := doRequest(r, http.MethodGet, "/trips", "", authHeader(expired))
	if w.Code != http.StatusUnauthorized || errorOf(t, w) != errUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d %s", w.Code, w.Body.String())
	}
}
