package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// TripService implements business logic for Trip operations. Every method
// is scoped to the calling user; trips owned by someone else behave as if
// they do not exist.
type TripService struct {
	trips repo.TripRepo
	cache TripCache
}

// NewTripService constructs a TripService. cache may be nil.
func NewTripService(trips repo.TripRepo, cache TripCache) *TripService {
	return &TripService{trips: trips, cache: cache}
}

// Create validates and persists a new trip owned by userID.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	trip.UserID = userID
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single trip owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := ownedTrip(ctx, s.trips, userID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return trip, nil
}

// List returns one page of the user's trips ordered by start_date
// descending, plus the total count for pagination links.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip, then drops
// the trip's cached snapshot.
func (s *TripService) Update(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	existing, err := ownedTrip(ctx, s.trips, userID, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip.UserID = existing.UserID
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	s.invalidate(ctx, trip.ID)
	return result, nil
}

// Delete removes a trip and everything under it (the schema cascades),
// then drops the cached snapshot.
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	s.invalidate(ctx, tripID)
	return nil
}

func (s *TripService) invalidate(ctx context.Context, tripID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.InvalidateTrip(ctx, tripID)
	}
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate must not be before StartDate; a same-day trip is valid.
//   - BudgetLimit, if set, must not be negative.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if trip.BudgetLimit != nil && trip.BudgetLimit.IsNegative() {
		return fmt.Errorf("%w: budget_limit must not be negative", domain.ErrValidation)
	}
	return nil
}
