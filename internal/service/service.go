// Package service implements the business logic of the GlobeTrotter API.
// Services validate input, enforce ownership, and orchestrate repos, the
// planner, and the Redis cache. Handlers call services; services never see
// HTTP types.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// TripCache is the slice of the Redis cache the write paths need.
// Satisfied by cache.Cache; tests substitute a no-op.
type TripCache interface {
	InvalidateTrip(ctx context.Context, tripID uuid.UUID) error
}

// ownedTrip loads a trip and verifies the caller owns it. A trip that
// exists but belongs to someone else is reported as ErrNotFound so the
// API does not leak which trip IDs exist.
func ownedTrip(ctx context.Context, trips repo.TripRepo, userID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	if trip.UserID != userID {
		return domain.Trip{}, fmt.Errorf("%w: trip %s", domain.ErrNotFound, tripID)
	}
	return trip, nil
}
