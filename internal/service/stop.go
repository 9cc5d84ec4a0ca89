package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// StopService implements business logic for Stop operations. It holds the
// trips repo because every stop write validates against the parent trip's
// date range, and ownership is checked at the trip level.
type StopService struct {
	trips repo.TripRepo
	stops repo.StopRepo
	cache TripCache
}

// NewStopService constructs a StopService. cache may be nil.
func NewStopService(trips repo.TripRepo, stops repo.StopRepo, cache TripCache) *StopService {
	return &StopService{trips: trips, stops: stops, cache: cache}
}

// Create validates the stop against the parent trip and persists it.
// Returns domain.ErrNotFound if the trip does not exist or is not the
// caller's, domain.ErrValidation if input violates business rules
// (including a date outside the trip's range or a duplicate sequence_order).
func (s *StopService) Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	trip, err := ownedTrip(ctx, s.trips, userID, stop.TripID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	if err := validateStop(stop, trip); err != nil {
		return domain.Stop{}, err
	}
	result, err := s.stops.Create(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Create: %w", err)
	}
	s.invalidate(ctx, stop.TripID)
	return result, nil
}

// Get returns a single stop by ID, scoped to the given trip.
func (s *StopService) Get(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Get: %w", err)
	}
	stop, err := s.stops.GetByID(ctx, tripID, stopID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Get: %w", err)
	}
	return stop, nil
}

// List returns all stops for a trip in itinerary order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *StopService) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.StopService.List: %w", err)
	}
	stops, err := s.stops.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.StopService.List: %w", err)
	}
	if stops == nil {
		stops = []domain.Stop{}
	}
	return stops, nil
}

// Update validates and persists changes to an existing stop.
func (s *StopService) Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	trip, err := ownedTrip(ctx, s.trips, userID, stop.TripID)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	if err := validateStop(stop, trip); err != nil {
		return domain.Stop{}, err
	}
	result, err := s.stops.Update(ctx, stop)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("service.StopService.Update: %w", err)
	}
	s.invalidate(ctx, stop.TripID)
	return result, nil
}

// Delete removes a stop and its activities (the schema cascades).
func (s *StopService) Delete(ctx context.Context, userID, tripID, stopID uuid.UUID) error {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	if err := s.stops.Delete(ctx, tripID, stopID); err != nil {
		return fmt.Errorf("service.StopService.Delete: %w", err)
	}
	s.invalidate(ctx, tripID)
	return nil
}

func (s *StopService) invalidate(ctx context.Context, tripID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.InvalidateTrip(ctx, tripID)
	}
}

// validateStop enforces business rules common to both Create and Update.
// The parent trip supplies the date bounds: a stop can only cover days the
// trip actually spans.
func validateStop(stop domain.Stop, trip domain.Trip) error {
	if strings.TrimSpace(stop.CityName) == "" {
		return fmt.Errorf("%w: city_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(stop.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if stop.SequenceOrder < 1 {
		return fmt.Errorf("%w: sequence_order must be a positive integer", domain.ErrValidation)
	}
	if err := planner.ValidateStopDates(stop.ArrivalDate, stop.DepartureDate); err != nil {
		return err
	}
	if err := planner.ValidateWithin(stop.ArrivalDate, &trip.StartDate, &trip.EndDate, "arrival_date"); err != nil {
		return err
	}
	if err := planner.ValidateWithin(stop.DepartureDate, &trip.StartDate, &trip.EndDate, "departure_date"); err != nil {
		return err
	}
	return nil
}
