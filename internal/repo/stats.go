package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// StatsRepo defines the read-only aggregate queries behind the admin dashboard.
type StatsRepo interface {
	// PlatformStats returns entity counts plus average trip duration and budget.
	PlatformStats(ctx context.Context) (domain.PlatformStats, error)

	// PopularDestinations returns the most-visited cities, busiest first.
	PopularDestinations(ctx context.Context, limit int) ([]domain.DestinationCount, error)

	// TopUsers returns the users with the most trips, busiest first.
	TopUsers(ctx context.Context, limit int) ([]domain.UserTripCount, error)

	// ActivityAnalytics returns activity counts per category, largest first.
	ActivityAnalytics(ctx context.Context) ([]domain.CategoryCount, error)
}

// pgStatsRepo is the Postgres implementation of StatsRepo.
type pgStatsRepo struct {
	db db
}

// NewStatsRepo constructs a StatsRepo backed by the provided db connection.
func NewStatsRepo(db db) StatsRepo {
	return &pgStatsRepo{db: db}
}

func (r *pgStatsRepo) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	// end_date - start_date yields whole days in Postgres; +1 makes the
	// duration inclusive of both endpoints, matching Trip.DurationDays.
	const q = `
		SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM trips),
			(SELECT count(*) FROM stops),
			(SELECT count(*) FROM activities),
			coalesce((SELECT avg(end_date - start_date + 1) FROM trips), 0),
			coalesce((SELECT avg(budget_limit) FROM trips WHERE budget_limit IS NOT NULL), 0)`

	var stats domain.PlatformStats
	err := r.db.QueryRow(ctx, q).Scan(
		&stats.TotalUsers,
		&stats.TotalTrips,
		&stats.TotalStops,
		&stats.TotalActivities,
		&stats.AvgTripDuration,
		&stats.AvgBudget,
	)
	if err != nil {
		return domain.PlatformStats{}, fmt.Errorf("repo.StatsRepo.PlatformStats: %w", err)
	}
	return stats, nil
}

func (r *pgStatsRepo) PopularDestinations(ctx context.Context, limit int) ([]domain.DestinationCount, error) {
	const q = `
		SELECT city_name, count(*)
		FROM stops
		GROUP BY city_name
		ORDER BY count(*) DESC, city_name
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.PopularDestinations: %w", err)
	}
	defer rows.Close()

	var out []domain.DestinationCount
	for rows.Next() {
		var d domain.DestinationCount
		if err := rows.Scan(&d.City, &d.Count); err != nil {
			return nil, fmt.Errorf("repo.StatsRepo.PopularDestinations: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.PopularDestinations: rows: %w", err)
	}

	return out, nil
}

func (r *pgStatsRepo) TopUsers(ctx context.Context, limit int) ([]domain.UserTripCount, error) {
	const q = `
		SELECT u.email, count(t.id)
		FROM users u
		JOIN trips t ON t.user_id = u.id
		GROUP BY u.id, u.email
		ORDER BY count(t.id) DESC, u.email
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.TopUsers: %w", err)
	}
	defer rows.Close()

	var out []domain.UserTripCount
	for rows.Next() {
		var u domain.UserTripCount
		if err := rows.Scan(&u.UserEmail, &u.TripCount); err != nil {
			return nil, fmt.Errorf("repo.StatsRepo.TopUsers: scan: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.TopUsers: rows: %w", err)
	}

	return out, nil
}

func (r *pgStatsRepo) ActivityAnalytics(ctx context.Context) ([]domain.CategoryCount, error) {
	const q = `
		SELECT category, count(*)
		FROM activities
		GROUP BY category
		ORDER BY count(*) DESC, category`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.ActivityAnalytics: %w", err)
	}
	defer rows.Close()

	var out []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("repo.StatsRepo.ActivityAnalytics: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.ActivityAnalytics: rows: %w", err)
	}

	return out, nil
}
