package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// StopRepo defines the persistence operations for Stops.
// All write and single-read operations are scoped by tripID to enforce ownership.
type StopRepo interface {
	// Create inserts a new stop and returns the persisted record.
	// A duplicate sequence_order within the trip maps to domain.ErrValidation.
	Create(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// GetByID retrieves a single stop, scoped to the given tripID.
	// Returns domain.ErrNotFound if no stop with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error)

	// ListByTripID returns all stops for a trip ordered by sequence_order ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)

	// Update overwrites the mutable fields of a stop, scoped to the given tripID.
	Update(ctx context.Context, stop domain.Stop) (domain.Stop, error)

	// Delete removes a stop by ID, scoped to the given tripID.
	Delete(ctx context.Context, tripID, stopID uuid.UUID) error
}

// pgStopRepo is the Postgres implementation of StopRepo.
type pgStopRepo struct {
	db db
}

// NewStopRepo constructs a StopRepo backed by the provided db connection.
func NewStopRepo(db db) StopRepo {
	return &pgStopRepo{db: db}
}

const stopColumns = `id, trip_id, city_name, country, arrival_date, departure_date, sequence_order, cost_index, description, created_at`

func (r *pgStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	const q = `
		INSERT INTO stops (trip_id, city_name, country, arrival_date, departure_date, sequence_order, cost_index, description)
		VALUES (@trip_id, @city_name, @country, @arrival_date, @departure_date, @sequence_order, @cost_index, @description)
		RETURNING ` + stopColumns

	args := pgx.NamedArgs{
		"trip_id":        stop.TripID,
		"city_name":      stop.CityName,
		"country":        stop.Country,
		"arrival_date":   stop.ArrivalDate,
		"departure_date": stop.DepartureDate,
		"sequence_order": stop.SequenceOrder,
		"cost_index":     nullDecimal(stop.CostIndex),
		"description":    stop.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanStop(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w: sequence_order %d is already used in this trip",
				domain.ErrValidation, stop.SequenceOrder)
		}
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error) {
	const q = `
		SELECT ` + stopColumns + `
		FROM stops
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID})
	result, err := scanStop(row)
	if err != nil {
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	const q = `
		SELECT ` + stopColumns + `
		FROM stops
		WHERE trip_id = @trip_id
		ORDER BY sequence_order, arrival_date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var stops []domain.Stop
	for rows.Next() {
		s, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StopRepo.ListByTripID: scan: %w", err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StopRepo.ListByTripID: rows: %w", err)
	}

	return stops, nil
}

func (r *pgStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	const q = `
		UPDATE stops
		SET city_name      = @city_name,
		    country        = @country,
		    arrival_date   = @arrival_date,
		    departure_date = @departure_date,
		    sequence_order = @sequence_order,
		    cost_index     = @cost_index,
		    description    = @description
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + stopColumns

	args := pgx.NamedArgs{
		"id":             stop.ID,
		"trip_id":        stop.TripID,
		"city_name":      stop.CityName,
		"country":        stop.Country,
		"arrival_date":   stop.ArrivalDate,
		"departure_date": stop.DepartureDate,
		"sequence_order": stop.SequenceOrder,
		"cost_index":     nullDecimal(stop.CostIndex),
		"description":    stop.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanStop(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Stop{}, fmt.Errorf("repo.StopRepo.Update: %w: sequence_order %d is already used in this trip",
				domain.ErrValidation, stop.SequenceOrder)
		}
		return domain.Stop{}, fmt.Errorf("repo.StopRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	const q = `DELETE FROM stops WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": stopID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.StopRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StopRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint breach.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// scanStop maps a single database row into a domain.Stop.
func scanStop(s scanner) (domain.Stop, error) {
	var (
		st        domain.Stop
		id        pgtype.UUID
		tripID    pgtype.UUID
		arrival   pgtype.Date
		departure pgtype.Date
		costIndex decimal.NullDecimal
	)

	err := s.Scan(&id, &tripID, &st.CityName, &st.Country, &arrival, &departure, &st.SequenceOrder, &costIndex, &st.Description, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stop{}, domain.ErrNotFound
		}
		return domain.Stop{}, err
	}

	st.ID = uuid.UUID(id.Bytes)
	st.TripID = uuid.UUID(tripID.Bytes)
	st.ArrivalDate = arrival.Time
	st.DepartureDate = departure.Time
	st.CostIndex = decimalPtr(costIndex)

	return st, nil
}
