package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

const maxPackingItems = 200

// SettingsService implements per-trip preferences, currently the packing
// list.
type SettingsService struct {
	trips    repo.TripRepo
	settings repo.SettingsRepo
	cache    TripCache
}

// NewSettingsService constructs a SettingsService. cache may be nil.
func NewSettingsService(trips repo.TripRepo, settings repo.SettingsRepo, cache TripCache) *SettingsService {
	return &SettingsService{trips: trips, settings: settings, cache: cache}
}

// Get returns the trip's settings. A trip that has never saved settings
// gets an empty packing list, not an error.
func (s *SettingsService) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.TripSettings, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return domain.TripSettings{}, fmt.Errorf("service.SettingsService.Get: %w", err)
	}
	settings, err := s.settings.Get(ctx, tripID)
	if err != nil {
		return domain.TripSettings{}, fmt.Errorf("service.SettingsService.Get: %w", err)
	}
	return settings, nil
}

// Put replaces the trip's settings wholesale. The packing list is small
// client state; last write wins.
func (s *SettingsService) Put(ctx context.Context, userID uuid.UUID, settings domain.TripSettings) (domain.TripSettings, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, settings.TripID); err != nil {
		return domain.TripSettings{}, fmt.Errorf("service.SettingsService.Put: %w", err)
	}
	if len(settings.PackingList) > maxPackingItems {
		return domain.TripSettings{}, fmt.Errorf("%w: packing list exceeds %d items", domain.ErrValidation, maxPackingItems)
	}
	for _, item := range settings.PackingList {
		if strings.TrimSpace(item.Name) == "" {
			return domain.TripSettings{}, fmt.Errorf("%w: packing item name is required", domain.ErrValidation)
		}
	}
	result, err := s.settings.Upsert(ctx, settings)
	if err != nil {
		return domain.TripSettings{}, fmt.Errorf("service.SettingsService.Put: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTrip(ctx, settings.TripID)
	}
	return result, nil
}
