package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// BudgetService implements business logic for budget records and the
// derived spending summary.
type BudgetService struct {
	trips   repo.TripRepo
	budgets repo.BudgetRepo
	loader  *SnapshotLoader
	cache   TripCache
}

// NewBudgetService constructs a BudgetService. cache may be nil.
func NewBudgetService(trips repo.TripRepo, budgets repo.BudgetRepo, loader *SnapshotLoader, cache TripCache) *BudgetService {
	return &BudgetService{trips: trips, budgets: budgets, loader: loader, cache: cache}
}

// CreateRecord validates and persists an expense, then returns the record
// together with the budget verdict its amount produced. Overspending is
// reported, never rejected: the user already spent the money.
func (s *BudgetService) CreateRecord(ctx context.Context, userID uuid.UUID, record domain.BudgetRecord) (domain.BudgetRecord, planner.BudgetVerdict, error) {
	trip, err := ownedTrip(ctx, s.trips, userID, record.TripID)
	if err != nil {
		return domain.BudgetRecord{}, planner.BudgetVerdict{}, fmt.Errorf("service.BudgetService.CreateRecord: %w", err)
	}
	if !domain.ValidBudgetCategory(record.Category) {
		return domain.BudgetRecord{}, planner.BudgetVerdict{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, record.Category)
	}
	if !record.Amount.IsPositive() {
		return domain.BudgetRecord{}, planner.BudgetVerdict{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	snap, err := s.loader.Load(ctx, trip.ID)
	if err != nil {
		return domain.BudgetRecord{}, planner.BudgetVerdict{}, fmt.Errorf("service.BudgetService.CreateRecord: %w", err)
	}
	spent := planner.TotalSpend(snap.BudgetRecords, snap.Activities)
	verdict := planner.CheckBudget(trip.BudgetLimit, spent, record.Amount)

	result, err := s.budgets.Create(ctx, record)
	if err != nil {
		return domain.BudgetRecord{}, planner.BudgetVerdict{}, fmt.Errorf("service.BudgetService.CreateRecord: %w", err)
	}
	s.invalidate(ctx, record.TripID)
	return result, verdict, nil
}

// ListRecords returns all expenses for a trip, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BudgetService) ListRecords(ctx context.Context, userID, tripID uuid.UUID) ([]domain.BudgetRecord, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.BudgetService.ListRecords: %w", err)
	}
	records, err := s.budgets.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.ListRecords: %w", err)
	}
	if records == nil {
		records = []domain.BudgetRecord{}
	}
	return records, nil
}

// DeleteRecord removes an expense.
func (s *BudgetService) DeleteRecord(ctx context.Context, userID, tripID, recordID uuid.UUID) error {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteRecord: %w", err)
	}
	if err := s.budgets.Delete(ctx, tripID, recordID); err != nil {
		return fmt.Errorf("service.BudgetService.DeleteRecord: %w", err)
	}
	s.invalidate(ctx, tripID)
	return nil
}

// Summary returns the derived spending breakdown for a trip: per-category
// totals, activity costs, the authoritative total, and the over-budget flag.
func (s *BudgetService) Summary(ctx context.Context, userID, tripID uuid.UUID) (domain.BudgetSummary, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}
	snap, err := s.loader.Load(ctx, tripID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}
	return planner.Summarize(snap.Trip, snap.BudgetRecords, snap.Activities), nil
}

func (s *BudgetService) invalidate(ctx context.Context, tripID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.InvalidateTrip(ctx, tripID)
	}
}
