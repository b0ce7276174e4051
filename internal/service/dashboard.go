package service

import (
	"context"
	"time"

	"travel_planner/internal/models"
	"travel_planner/internal/repository"
)

// maxUpcoming caps the trips listed in a summary.
const maxUpcoming = 5

// DashboardService builds the per-user summary pushed over /summary and /ws.
type DashboardService struct {
	trips    repository.Trips
	expenses repository.Expenses
	now      func() time.Time
}

func NewDashboardService(trips repository.Trips, expenses repository.Expenses) *DashboardService {
	return &DashboardService{trips: trips, expenses: expenses, now: time.Now}
}

// Summary counts the user's trips and expenses. UpcomingTrips holds the first
// maxUpcoming trips, in the store's start-date order, whose end date is today
// (UTC) or later, so a trip already under way is still listed.
func (s *DashboardService) Summary(ctx context.Context, uid string) (models.Summary, error) {
	trips, err := s.trips.List(ctx, uid)
	if err != nil {
		return models.Summary{}, err
	}
	expenses, err := s.expenses.List(ctx, models.ExpenseFilter{UserID: uid})
	if err != nil {
		return models.Summary{}, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	sum := models.Summary{
		TripCount:     len(trips),
		UpcomingTrips: make([]models.Trip, 0, maxUpcoming),
		ExpenseCount:  len(expenses),
	}
	for _, t := range trips {
		if len(sum.UpcomingTrips) == maxUpcoming {
			break
		}
		if !t.EndDate.Before(today) {
			sum.UpcomingTrips = append(sum.UpcomingTrips, t)
		}
	}
	for _, e := range expenses {
		sum.ExpenseTotal += e.Amount
	}
	return sum, nil
}
