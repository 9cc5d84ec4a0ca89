package service

import (
	"context"
	"fmt"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// StatsCache is the slice of the Redis cache the admin dashboard needs.
// Satisfied by cache.Cache.
type StatsCache interface {
	GetStats(ctx context.Context) (*domain.PlatformStats, error)
	SetStats(ctx context.Context, stats *domain.PlatformStats) error
}

// AdminService serves the platform analytics behind the admin endpoints.
// The aggregate stats are cached briefly; the ranking queries are cheap
// enough to run on every request.
type AdminService struct {
	stats repo.StatsRepo
	cache StatsCache
}

// NewAdminService constructs an AdminService. cache may be nil.
func NewAdminService(stats repo.StatsRepo, cache StatsCache) *AdminService {
	return &AdminService{stats: stats, cache: cache}
}

// PlatformStats returns the platform-wide aggregate counters.
func (s *AdminService) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetStats(ctx); err == nil && cached != nil {
			return *cached, nil
		}
	}
	stats, err := s.stats.PlatformStats(ctx)
	if err != nil {
		return domain.PlatformStats{}, fmt.Errorf("service.AdminService.PlatformStats: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.SetStats(ctx, &stats)
	}
	return stats, nil
}

// PopularDestinations returns the most-visited cities, most popular first.
func (s *AdminService) PopularDestinations(ctx context.Context, limit int) ([]domain.DestinationCount, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	rows, err := s.stats.PopularDestinations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.AdminService.PopularDestinations: %w", err)
	}
	if rows == nil {
		rows = []domain.DestinationCount{}
	}
	return rows, nil
}

// TopUsers returns the users with the most trips.
func (s *AdminService) TopUsers(ctx context.Context, limit int) ([]domain.UserTripCount, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	rows, err := s.stats.TopUsers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.AdminService.TopUsers: %w", err)
	}
	if rows == nil {
		rows = []domain.UserTripCount{}
	}
	return rows, nil
}

// ActivityAnalytics returns how many activities exist per category.
func (s *AdminService) ActivityAnalytics(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := s.stats.ActivityAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AdminService.ActivityAnalytics: %w", err)
	}
	if rows == nil {
		rows = []domain.CategoryCount{}
	}
	return rows, nil
}
