// Package cache provides a typed Redis cache for derived read models: the
// per-trip snapshot feeding the itinerary projections, and the admin
// platform stats. Cache failures are never fatal — callers log and fall
// through to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

const (
	// snapshotTTL bounds staleness if an invalidation is ever missed.
	snapshotTTL = 15 * time.Minute
	// statsTTL is short because admin stats have no write-path invalidation.
	statsTTL = time.Minute
)

// Cache wraps a Redis client with typed get/set/invalidate operations.
type Cache struct {
	client      *redis.Client
	snapshotTTL time.Duration
	statsTTL    time.Duration
}

// New constructs a Cache with the default TTLs.
func New(client *redis.Client) *Cache {
	return &Cache{client: client, snapshotTTL: snapshotTTL, statsTTL: statsTTL}
}

func snapshotKey(tripID uuid.UUID) string {
	return "trip:snapshot:" + tripID.String()
}

const statsKey = "admin:stats"

// GetSnapshot retrieves a cached trip snapshot.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetSnapshot(ctx context.Context, tripID uuid.UUID) (*domain.TripSnapshot, error) {
	val, err := c.client.Get(ctx, snapshotKey(tripID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get snapshot for trip %s: %w", tripID, err)
	}

	var snap domain.TripSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling cached snapshot for trip %s: %w", tripID, err)
	}
	return &snap, nil
}

// SetSnapshot stores a trip snapshot with the snapshot TTL.
func (c *Cache) SetSnapshot(ctx context.Context, snap *domain.TripSnapshot) error {
	if snap == nil {
		return nil
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot for trip %s: %w", snap.Trip.ID, err)
	}

	if err := c.client.Set(ctx, snapshotKey(snap.Trip.ID), b, c.snapshotTTL).Err(); err != nil {
		return fmt.Errorf("cache set snapshot for trip %s: %w", snap.Trip.ID, err)
	}
	return nil
}

// InvalidateTrip drops the cached snapshot for a trip. Called after every
// write under the trip (stop, activity, budget, or trip mutation).
func (c *Cache) InvalidateTrip(ctx context.Context, tripID uuid.UUID) error {
	if err := c.client.Del(ctx, snapshotKey(tripID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate trip %s: %w", tripID, err)
	}
	return nil
}

// GetStats retrieves the cached platform stats.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	val, err := c.client.Get(ctx, statsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get stats: %w", err)
	}

	var stats domain.PlatformStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("unmarshaling cached stats: %w", err)
	}
	return &stats, nil
}

// SetStats stores the platform stats with the short stats TTL.
func (c *Cache) SetStats(ctx context.Context, stats *domain.PlatformStats) error {
	if stats == nil {
		return nil
	}

	b, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	if err := c.client.Set(ctx, statsKey, b, c.statsTTL).Err(); err != nil {
		return fmt.Errorf("cache set stats: %w", err)
	}
	return nil
}
