package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// Single-record operations are scoped by stopID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// ListByStopID returns all activities for one stop, ordered by
	// date_scheduled then time_start.
	ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)

	// ListByTripID returns all activities across every stop of a trip.
	// Used by the planner projections and the authoritative spend total.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given stopID.
	Delete(ctx context.Context, stopID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, stop_id, name, category, date_scheduled, time_start, duration_hours, cost, description, created_at`

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (stop_id, name, category, date_scheduled, time_start, duration_hours, cost, description)
		VALUES (@stop_id, @name, @category, @date_scheduled, @time_start, @duration_hours, @cost, @description)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"stop_id":        activity.StopID,
		"name":           activity.Name,
		"category":       string(activity.Category),
		"date_scheduled": activity.DateScheduled,
		"time_start":     activity.TimeStart, // nil becomes NULL
		"duration_hours": nullDecimal(activity.DurationHours),
		"cost":           nullDecimal(activity.Cost),
		"description":    activity.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE stop_id = @stop_id
		ORDER BY date_scheduled, time_start NULLS FIRST, id`

	return r.list(ctx, q, pgx.NamedArgs{"stop_id": stopID}, "ListByStopID")
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT a.id, a.stop_id, a.name, a.category, a.date_scheduled, a.time_start, a.duration_hours, a.cost, a.description, a.created_at
		FROM activities a
		JOIN stops s ON s.id = a.stop_id
		WHERE s.trip_id = @trip_id
		ORDER BY a.date_scheduled, a.time_start NULLS FIRST, a.id`

	return r.list(ctx, q, pgx.NamedArgs{"trip_id": tripID}, "ListByTripID")
}

func (r *pgActivityRepo) list(ctx context.Context, q string, args pgx.NamedArgs, op string) ([]domain.Activity, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: %w", op, err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.%s: scan: %w", op, err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.%s: rows: %w", op, err)
	}

	return activities, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, stopID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND stop_id = @stop_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "stop_id": stopID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		stopID   pgtype.UUID
		category string
		date     pgtype.Date
		start    *string
		duration decimal.NullDecimal
		cost     decimal.NullDecimal
	)

	err := s.Scan(&id, &stopID, &a.Name, &category, &date, &start, &duration, &cost, &a.Description, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.StopID = uuid.UUID(stopID.Bytes)
	a.Category = domain.ActivityCategory(category)
	a.DateScheduled = date.Time
	a.TimeStart = start
	a.DurationHours = decimalPtr(duration)
	a.Cost = decimalPtr(cost)

	return a, nil
}
