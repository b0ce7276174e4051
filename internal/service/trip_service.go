package service

import (
	"context"
	"errors"
	"strings"

	"travel_planner/internal/models"
	"travel_planner/internal/repository"
)

var (
	ErrInvalidTrip    = errors.New("invalid trip: tripName, destination, startDate and endDate are required")
	ErrInvalidDates   = errors.New("invalid trip: endDate must not be before startDate")
	ErrInvalidExpense = errors.New("invalid expense: userId, description and date are required and amount must not be negative")
)

type TripService struct {
	repo repository.Trips
}

func NewTripService(repo repository.Trips) *TripService {
	return &TripService{repo: repo}
}

func (s *TripService) List(ctx context.Context, owner string) ([]models.Trip, error) {
	return s.repo.List(ctx, owner)
}

func (s *TripService) Get(ctx context.Context, id, owner string) (models.Trip, error) {
	return s.repo.Get(ctx, id, owner)
}

// Create stamps the owner onto the trip; any owner carried in t is ignored
// on the scoped surface.
func (s *TripService) Create(ctx context.Context, owner string, t models.Trip) (models.Trip, error) {
	t.TripName = strings.TrimSpace(t.TripName)
	t.Destination = strings.TrimSpace(t.Destination)
	if t.TripName == "" || t.Destination == "" || t.StartDate.IsZero() || t.EndDate.IsZero() {
		return models.Trip{}, ErrInvalidTrip
	}
	if t.EndDate.Before(t.StartDate.Time) {
		return models.Trip{}, ErrInvalidDates
	}
	if owner != "" {
		t.UserUID = owner
	}
	t.ID = ""
	return s.repo.Create(ctx, t)
}

// Update applies a partial change. When only one date is sent it is checked
// against the stored counterpart.
func (s *TripService) Update(ctx context.Context, id, owner string, p models.TripPatch) (models.Trip, error) {
	if p.TripName != nil && strings.TrimSpace(*p.TripName) == "" {
		return models.Trip{}, ErrInvalidTrip
	}
	if p.Destination != nil && strings.TrimSpace(*p.Destination) == "" {
		return models.Trip{}, ErrInvalidTrip
	}
	if p.Empty() {
		return s.repo.Get(ctx, id, owner)
	}
	if (p.StartDate == nil) != (p.EndDate == nil) {
		stored, err := s.repo.Get(ctx, id, owner)
		if err != nil {
			return models.Trip{}, err
		}
		if err := checkDates(stored, p); err != nil {
			return models.Trip{}, err
		}
	} else if err := checkDates(models.Trip{}, p); err != nil {
		return models.Trip{}, err
	}
	return s.repo.Update(ctx, id, owner, p)
}

// checkDates merges the patch dates over base and rejects a reversed range.
func checkDates(base models.Trip, p models.TripPatch) error {
	start, end := base.StartDate, base.EndDate
	if p.StartDate != nil {
		start = *p.StartDate
	}
	if p.EndDate != nil {
		end = *p.EndDate
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		return ErrInvalidDates
	}
	return nil
}

func (s *TripService) Delete(ctx context.Context, id, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
