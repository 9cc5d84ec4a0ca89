package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// Creating an activity also reports a budget verdict so the client can
// warn the user when the trip's limit is about to be crossed — the
// verdict is advisory and never blocks the write.
type ActivityService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
	budgets    repo.BudgetRepo
	cache      TripCache
}

// NewActivityService constructs an ActivityService. cache may be nil.
func NewActivityService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo, budgets repo.BudgetRepo, cache TripCache) *ActivityService {
	return &ActivityService{trips: trips, stops: stops, activities: activities, budgets: budgets, cache: cache}
}

var timeStartRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Create validates the activity against its parent stop, persists it, and
// returns the budget verdict for the activity's cost.
// Returns domain.ErrNotFound if the trip or stop is missing or not the
// caller's, domain.ErrValidation if input violates business rules.
func (s *ActivityService) Create(ctx context.Context, userID, tripID uuid.UUID, activity domain.Activity) (domain.Activity, planner.BudgetVerdict, error) {
	trip, err := ownedTrip(ctx, s.trips, userID, tripID)
	if err != nil {
		return domain.Activity{}, planner.BudgetVerdict{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	stop, err := s.stops.GetByID(ctx, tripID, activity.StopID)
	if err != nil {
		return domain.Activity{}, planner.BudgetVerdict{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(activity, stop); err != nil {
		return domain.Activity{}, planner.BudgetVerdict{}, err
	}

	verdict, err := s.verdictFor(ctx, trip, activity.Cost)
	if err != nil {
		return domain.Activity{}, planner.BudgetVerdict{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, planner.BudgetVerdict{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	s.invalidate(ctx, tripID)
	return result, verdict, nil
}

// ListByStop returns a stop's activities ordered by date, then start time.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByStop(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStop: %w", err)
	}
	if _, err := s.stops.GetByID(ctx, tripID, stopID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStop: %w", err)
	}
	activities, err := s.activities.ListByStopID(ctx, stopID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByStop: %w", err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

// Delete removes an activity, scoped to its stop and trip.
func (s *ActivityService) Delete(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if _, err := s.stops.GetByID(ctx, tripID, stopID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	if err := s.activities.Delete(ctx, stopID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	s.invalidate(ctx, tripID)
	return nil
}

// verdictFor computes the advisory budget check for a proposed cost
// against the trip's current total spend.
func (s *ActivityService) verdictFor(ctx context.Context, trip domain.Trip, cost *decimal.Decimal) (planner.BudgetVerdict, error) {
	proposed := decimal.Zero
	if cost != nil {
		proposed = *cost
	}
	records, err := s.budgets.ListByTripID(ctx, trip.ID)
	if err != nil {
		return planner.BudgetVerdict{}, err
	}
	activities, err := s.activities.ListByTripID(ctx, trip.ID)
	if err != nil {
		return planner.BudgetVerdict{}, err
	}
	spent := planner.TotalSpend(records, activities)
	return planner.CheckBudget(trip.BudgetLimit, spent, proposed), nil
}

func (s *ActivityService) invalidate(ctx context.Context, tripID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.InvalidateTrip(ctx, tripID)
	}
}

// validateActivity enforces business rules for activity writes. The parent
// stop supplies the date bounds: an activity must fall on a day the user
// is actually in that city.
func validateActivity(activity domain.Activity, stop domain.Stop) error {
	if strings.TrimSpace(activity.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.ValidActivityCategory(activity.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, activity.Category)
	}
	if activity.TimeStart != nil && !timeStartRe.MatchString(*activity.TimeStart) {
		return fmt.Errorf("%w: time_start must be HH:MM in 24-hour format", domain.ErrValidation)
	}
	if activity.Cost != nil && activity.Cost.IsNegative() {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	if activity.DurationHours != nil && activity.DurationHours.IsNegative() {
		return fmt.Errorf("%w: duration_hours must not be negative", domain.ErrValidation)
	}
	return planner.ValidateWithin(activity.DateScheduled, &stop.ArrivalDate, &stop.DepartureDate, "date_scheduled")
}
