package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// SnapshotCache is the slice of the Redis cache the snapshot loader needs.
// Satisfied by cache.Cache.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, tripID uuid.UUID) (*domain.TripSnapshot, error)
	SetSnapshot(ctx context.Context, snap *domain.TripSnapshot) error
}

// SnapshotLoader assembles a fully-loaded TripSnapshot. Reads go through
// Redis first; on a miss the four independent queries run concurrently
// and the result is cached for subsequent derivation calls.
type SnapshotLoader struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
	budgets    repo.BudgetRepo
	cache      SnapshotCache
}

// NewSnapshotLoader constructs a SnapshotLoader. cache may be nil, in
// which case every Load hits the database.
func NewSnapshotLoader(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo, budgets repo.BudgetRepo, cache SnapshotCache) *SnapshotLoader {
	return &SnapshotLoader{trips: trips, stops: stops, activities: activities, budgets: budgets, cache: cache}
}

// Load returns the snapshot for tripID. A cache read error is treated as
// a miss so a Redis outage degrades to database reads rather than
// failing requests.
func (l *SnapshotLoader) Load(ctx context.Context, tripID uuid.UUID) (domain.TripSnapshot, error) {
	if l.cache != nil {
		if snap, err := l.cache.GetSnapshot(ctx, tripID); err == nil && snap != nil {
			return *snap, nil
		}
	}

	var snap domain.TripSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trip, err := l.trips.GetByID(gctx, tripID)
		snap.Trip = trip
		return err
	})
	g.Go(func() error {
		stops, err := l.stops.ListByTripID(gctx, tripID)
		snap.Stops = stops
		return err
	})
	g.Go(func() error {
		activities, err := l.activities.ListByTripID(gctx, tripID)
		snap.Activities = activities
		return err
	})
	g.Go(func() error {
		records, err := l.budgets.ListByTripID(gctx, tripID)
		snap.BudgetRecords = records
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.TripSnapshot{}, fmt.Errorf("service.SnapshotLoader.Load: %w", err)
	}

	if l.cache != nil {
		// Best effort: a failed cache write only costs the next read.
		_ = l.cache.SetSnapshot(ctx, &snap)
	}
	return snap, nil
}
