package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// ItineraryService serves the derived read models of a trip: the two
// itinerary views, the readiness score, and the travel-day breakdown.
// All of them are computed from one snapshot, so a single request never
// mixes data from before and after a concurrent write.
type ItineraryService struct {
	trips  repo.TripRepo
	loader *SnapshotLoader
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(trips repo.TripRepo, loader *SnapshotLoader) *ItineraryService {
	return &ItineraryService{trips: trips, loader: loader}
}

// CityView returns the itinerary grouped by stop, in itinerary order.
func (s *ItineraryService) CityView(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CityStop, error) {
	snap, err := s.ownedSnapshot(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.CityView: %w", err)
	}
	return planner.ByCity(snap.Stops, snap.Activities), nil
}

// DayView returns one entry per calendar day of the trip, inclusive.
func (s *ItineraryService) DayView(ctx context.Context, userID, tripID uuid.UUID) ([]planner.ItineraryDay, error) {
	snap, err := s.ownedSnapshot(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.DayView: %w", err)
	}
	days, err := planner.ByDay(snap.Trip, snap.Stops, snap.Activities)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.DayView: %w", err)
	}
	return days, nil
}

// ProgressReport is the readiness score plus the milestones behind it.
type ProgressReport struct {
	Score      int                 `json:"score"`
	Milestones []planner.Milestone `json:"milestones"`
}

// Progress returns the trip's planning completeness score.
func (s *ItineraryService) Progress(ctx context.Context, userID, tripID uuid.UUID) (ProgressReport, error) {
	snap, err := s.ownedSnapshot(ctx, userID, tripID)
	if err != nil {
		return ProgressReport{}, fmt.Errorf("service.ItineraryService.Progress: %w", err)
	}
	total := planner.TotalSpend(snap.BudgetRecords, snap.Activities)
	score, milestones := planner.Progress(len(snap.Stops), len(snap.Activities), total)
	return ProgressReport{Score: score, Milestones: milestones}, nil
}

// TravelDays returns the inferred transit legs between consecutive stops.
func (s *ItineraryService) TravelDays(ctx context.Context, userID, tripID uuid.UUID) ([]planner.TravelDay, error) {
	snap, err := s.ownedSnapshot(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.TravelDays: %w", err)
	}
	return planner.TravelDays(snap.Stops), nil
}

// ownedSnapshot checks ownership before loading so the cheap indexed read
// gates the fan-out, and a foreign trip ID never warms the cache.
func (s *ItineraryService) ownedSnapshot(ctx context.Context, userID, tripID uuid.UUID) (domain.TripSnapshot, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return domain.TripSnapshot{}, err
	}
	return s.loader.Load(ctx, tripID)
}
