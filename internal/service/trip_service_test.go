package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"travel_planner/internal/models"
)

func datePtr(s string) *models.Date {
	d := models.MustDate(s)
	return &d
}

func TestTripService_Create(t *testing.T) {
	valid := models.Trip{
		TripName:    " Paris ",
		Destination: "France",
		StartDate:   models.MustDate("2025-06-01"),
		EndDate:     models.MustDate("2025-06-10"),
		UserUID:     "mallory",
	}

	tests := []struct {
		name    string
		owner   string
		mutate  func(*models.Trip)
		wantErr error
	}{
		{name: "owner stamped over body", owner: "alice"},
		{name: "legacy keeps body owner", owner: ""},
		{name: "missing name", owner: "alice", mutate: func(t *models.Trip) { t.TripName = "  " }, wantErr: ErrInvalidTrip},
		{name: "missing end date", owner: "alice", mutate: func(t *models.Trip) { t.EndDate = models.Date{} }, wantErr: ErrInvalidTrip},
		{name: "end before start", owner: "alice", mutate: func(t *models.Trip) { t.EndDate = models.MustDate("2025-05-01") }, wantErr: ErrInvalidDates},
		{name: "same day trip", owner: "alice", mutate: func(t *models.Trip) { t.EndDate = t.StartDate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTripRepo{}
			svc := NewTripService(repo)

			in := valid
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			got, err := svc.Create(context.Background(), tt.owner, in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(repo.created) != 0 {
					t.Fatalf("repo must not be called on invalid input")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			wantOwner := tt.owner
			if wantOwner == "" {
				wantOwner = "mallory"
			}
			if got.UserUID != wantOwner {
				t.Fatalf("expected owner %q, got %q", wantOwner, got.UserUID)
			}
			if got.TripName != "Paris" {
				t.Fatalf("expected trimmed name, got %q", got.TripName)
			}
		})
	}
}

func TestTripService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("single date checked against stored trip", func(t *testing.T) {
		repo := &mockTripRepo{trips: []models.Trip{{
			ID: "t1", UserUID: "alice",
			StartDate: models.MustDate("2025-06-01"), EndDate: models.MustDate("2025-06-10"),
		}}}
		svc := NewTripService(repo)

		_, err := svc.Update(ctx, "t1", "alice", models.TripPatch{EndDate: datePtr("2025-05-01")})
		if !errors.Is(err, ErrInvalidDates) || repo.updates != 0 {
			t.Fatalf("expected ErrInvalidDates without repo update, got %v (%d)", err, repo.updates)
		}
		_, err = svc.Update(ctx, "t1", "alice", models.TripPatch{StartDate: datePtr("2025-07-01")})
		if !errors.Is(err, ErrInvalidDates) || repo.updates != 0 {
			t.Fatalf("expected ErrInvalidDates for late start, got %v (%d)", err, repo.updates)
		}

		if _, err := svc.Update(ctx, "t1", "alice", models.TripPatch{EndDate: datePtr("2025-06-20")}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if repo.updates != 1 || repo.lastOwner != "alice" {
			t.Fatalf("expected one scoped update, got %d for %q", repo.updates, repo.lastOwner)
		}
	})

	t.Run("single date on missing trip", func(t *testing.T) {
		repo := &mockTripRepo{}
		svc := NewTripService(repo)
		_, err := svc.Update(ctx, "t1", "alice", models.TripPatch{StartDate: datePtr("2030-01-01")})
		if !errors.Is(err, ErrNotFound) || repo.updates != 0 {
			t.Fatalf("expected ErrNotFound without update, got %v (%d)", err, repo.updates)
		}
	})

	t.Run("both dates reversed", func(t *testing.T) {
		repo := &mockTripRepo{}
		svc := NewTripService(repo)
		_, err := svc.Update(ctx, "t1", "alice", models.TripPatch{
			StartDate: datePtr("2025-06-10"),
			EndDate:   datePtr("2025-06-01"),
		})
		if !errors.Is(err, ErrInvalidDates) || repo.updates != 0 {
			t.Fatalf("expected ErrInvalidDates without repo call, got %v (%d)", err, repo.updates)
		}
	})

	t.Run("blank destination", func(t *testing.T) {
		blank := " "
		svc := NewTripService(&mockTripRepo{})
		if _, err := svc.Update(ctx, "t1", "alice", models.TripPatch{Destination: &blank}); !errors.Is(err, ErrInvalidTrip) {
			t.Fatalf("expected ErrInvalidTrip, got %v", err)
		}
	})

	t.Run("empty patch reads through", func(t *testing.T) {
		repo := &mockTripRepo{trips: []models.Trip{{ID: "t1", UserUID: "alice"}}}
		svc := NewTripService(repo)
		if _, err := svc.Update(ctx, "t1", "bob", models.TripPatch{}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for other owner, got %v", err)
		}
		if repo.getCalls != 1 || repo.updates != 0 {
			t.Fatalf("expected a single Get and no Update")
		}
	})
}

func TestExpenseService_Add(t *testing.T) {
	ctx := context.Background()
	base := models.Expense{UserID: "alice", Amount: 0, Description: " Museum ", Date: models.MustDate("2025-06-03")}

	repo := &mockExpenseRepo{}
	svc := NewExpenseService(repo)

	got, err := svc.Add(ctx, base)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != "e-new" || got.Description != "Museum" {
		t.Fatalf("unexpected expense: %+v", got)
	}

	invalid := []func(*models.Expense){
		func(e *models.Expense) { e.UserID = "" },
		func(e *models.Expense) { e.Amount = -1 },
		func(e *models.Expense) { e.Description = "" },
		func(e *models.Expense) { e.Date = models.Date{} },
	}
	for i, mutate := range invalid {
		in := base
		mutate(&in)
		if _, err := svc.Add(ctx, in); !errors.Is(err, ErrInvalidExpense) {
			t.Fatalf("case %d: expected ErrInvalidExpense, got %v", i, err)
		}
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one persisted expense, got %d", len(repo.created))
	}
}

func TestExpenseService_Update(t *testing.T) {
	repo := &mockExpenseRepo{}
	svc := NewExpenseService(repo)

	neg := -5.0
	if _, err := svc.Update(context.Background(), "e1", "", models.ExpensePatch{Amount: &neg}); !errors.Is(err, ErrInvalidExpense) {
		t.Fatalf("expected ErrInvalidExpense, got %v", err)
	}
	amt := 40.0
	if _, err := svc.Update(context.Background(), "e1", "", models.ExpensePatch{Amount: &amt}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.updates != 1 {
		t.Fatalf("expected one update, got %d", repo.updates)
	}
}

func TestDashboardService_Summary(t *testing.T) {
	trips := &mockTripRepo{trips: []models.Trip{
		{ID: "past", EndDate: models.MustDate("2025-01-10")},
		{ID: "ongoing", EndDate: models.MustDate("2025-06-15")},
		{ID: "future", EndDate: models.MustDate("2025-09-01")},
	}}
	expenses := &mockExpenseRepo{expenses: []models.Expense{
		{ID: "e1", Amount: 10.5},
		{ID: "e2", Amount: 4.5},
	}}
	svc := NewDashboardService(trips, expenses)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC) }

	sum, err := svc.Summary(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TripCount != 3 || sum.ExpenseCount != 2 || sum.ExpenseTotal != 15 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if len(sum.UpcomingTrips) != 2 || sum.UpcomingTrips[0].ID != "ongoing" {
		t.Fatalf("unexpected upcoming trips: %+v", sum.UpcomingTrips)
	}
	if trips.lastOwner != "alice" || expenses.lastFilter.UserID != "alice" {
		t.Fatalf("summary must be scoped to the caller")
	}
}

func TestDashboardService_SummaryCapsUpcoming(t *testing.T) {
	var list []models.Trip
	for i := 1; i <= maxUpcoming+2; i++ {
		list = append(list, models.Trip{ID: fmt.Sprintf("t%d", i), EndDate: models.MustDate("2030-01-01")})
	}
	svc := NewDashboardService(&mockTripRepo{trips: list}, &mockExpenseRepo{})

	sum, err := svc.Summary(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TripCount != maxUpcoming+2 || len(sum.UpcomingTrips) != maxUpcoming || sum.UpcomingTrips[0].ID != "t1" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestDashboardService_SummaryRepoError(t *testing.T) {
	svc := NewDashboardService(&mockTripRepo{err: errors.New("boom")}, &mockExpenseRepo{})
	if _, err := svc.Summary(context.Background(), "alice"); err == nil {
		t.Fatalf("expected error")
	}
}
