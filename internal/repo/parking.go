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

// ParkingRepo defines the persistence operations for parking slots and bookings.
type ParkingRepo interface {
	// ListSlotsByStop returns all parking slots near a stop, ordered by slot number.
	ListSlotsByStop(ctx context.Context, stopID uuid.UUID) ([]domain.ParkingSlot, error)

	// GetSlot retrieves a single slot by ID.
	GetSlot(ctx context.Context, slotID uuid.UUID) (domain.ParkingSlot, error)

	// UpdateSlotStatus sets a slot's availability status.
	UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, status string) error

	// CreateBooking inserts a new booking and returns the persisted record.
	CreateBooking(ctx context.Context, booking domain.ParkingBooking) (domain.ParkingBooking, error)

	// GetBooking retrieves a booking by ID, scoped to the given tripID.
	GetBooking(ctx context.Context, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error)

	// UpdateBookingStatus sets a booking's status, scoped to the given tripID.
	UpdateBookingStatus(ctx context.Context, tripID, bookingID uuid.UUID, status string) error
}

// pgParkingRepo is the Postgres implementation of ParkingRepo.
type pgParkingRepo struct {
	db db
}

// NewParkingRepo constructs a ParkingRepo backed by the provided db connection.
func NewParkingRepo(db db) ParkingRepo {
	return &pgParkingRepo{db: db}
}

func (r *pgParkingRepo) ListSlotsByStop(ctx context.Context, stopID uuid.UUID) ([]domain.ParkingSlot, error) {
	const q = `
		SELECT id, stop_id, slot_number, location, availability_status, cost_per_hour, cost_per_day, max_hours, created_at
		FROM parking_slots
		WHERE stop_id = @stop_id
		ORDER BY slot_number`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"stop_id": stopID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParkingRepo.ListSlotsByStop: %w", err)
	}
	defer rows.Close()

	var slots []domain.ParkingSlot
	for rows.Next() {
		s, err := scanParkingSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParkingRepo.ListSlotsByStop: scan: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParkingRepo.ListSlotsByStop: rows: %w", err)
	}

	return slots, nil
}

func (r *pgParkingRepo) GetSlot(ctx context.Context, slotID uuid.UUID) (domain.ParkingSlot, error) {
	const q = `
		SELECT id, stop_id, slot_number, location, availability_status, cost_per_hour, cost_per_day, max_hours, created_at
		FROM parking_slots
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": slotID})
	result, err := scanParkingSlot(row)
	if err != nil {
		return domain.ParkingSlot{}, fmt.Errorf("repo.ParkingRepo.GetSlot: %w", err)
	}
	return result, nil
}

func (r *pgParkingRepo) UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, status string) error {
	const q = `UPDATE parking_slots SET availability_status = @status WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": slotID, "status": status})
	if err != nil {
		return fmt.Errorf("repo.ParkingRepo.UpdateSlotStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ParkingRepo.UpdateSlotStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgParkingRepo) CreateBooking(ctx context.Context, booking domain.ParkingBooking) (domain.ParkingBooking, error) {
	const q = `
		INSERT INTO parking_bookings (trip_id, parking_slot_id, start_date, end_date, total_cost, booking_status)
		VALUES (@trip_id, @slot_id, @start_date, @end_date, @total_cost, @status)
		RETURNING id, trip_id, parking_slot_id, start_date, end_date, total_cost, booking_status, created_at`

	args := pgx.NamedArgs{
		"trip_id":    booking.TripID,
		"slot_id":    booking.ParkingSlotID,
		"start_date": booking.StartDate,
		"end_date":   booking.EndDate,
		"total_cost": booking.TotalCost,
		"status":     booking.BookingStatus,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanParkingBooking(row)
	if err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("repo.ParkingRepo.CreateBooking: %w", err)
	}
	return result, nil
}

func (r *pgParkingRepo) GetBooking(ctx context.Context, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error) {
	const q = `
		SELECT id, trip_id, parking_slot_id, start_date, end_date, total_cost, booking_status, created_at
		FROM parking_bookings
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": bookingID, "trip_id": tripID})
	result, err := scanParkingBooking(row)
	if err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("repo.ParkingRepo.GetBooking: %w", err)
	}
	return result, nil
}

func (r *pgParkingRepo) UpdateBookingStatus(ctx context.Context, tripID, bookingID uuid.UUID, status string) error {
	const q = `UPDATE parking_bookings SET booking_status = @status WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": bookingID, "trip_id": tripID, "status": status})
	if err != nil {
		return fmt.Errorf("repo.ParkingRepo.UpdateBookingStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ParkingRepo.UpdateBookingStatus: %w", domain.ErrNotFound)
	}
	return nil
}

// scanParkingSlot maps a single database row into a domain.ParkingSlot.
func scanParkingSlot(s scanner) (domain.ParkingSlot, error) {
	var (
		slot    domain.ParkingSlot
		id      pgtype.UUID
		stopID  pgtype.UUID
		perHour decimal.NullDecimal
		perDay  decimal.NullDecimal
	)

	err := s.Scan(&id, &stopID, &slot.SlotNumber, &slot.Location, &slot.AvailabilityStatus, &perHour, &perDay, &slot.MaxHours, &slot.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ParkingSlot{}, domain.ErrNotFound
		}
		return domain.ParkingSlot{}, err
	}

	slot.ID = uuid.UUID(id.Bytes)
	slot.StopID = uuid.UUID(stopID.Bytes)
	slot.CostPerHour = decimalPtr(perHour)
	slot.CostPerDay = decimalPtr(perDay)

	return slot, nil
}

// scanParkingBooking maps a single database row into a domain.ParkingBooking.
func scanParkingBooking(s scanner) (domain.ParkingBooking, error) {
	var (
		b      domain.ParkingBooking
		id     pgtype.UUID
		tripID pgtype.UUID
		slotID pgtype.UUID
		start  pgtype.Date
		end    pgtype.Date
	)

	err := s.Scan(&id, &tripID, &slotID, &start, &end, &b.TotalCost, &b.BookingStatus, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ParkingBooking{}, domain.ErrNotFound
		}
		return domain.ParkingBooking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.TripID = uuid.UUID(tripID.Bytes)
	b.ParkingSlotID = uuid.UUID(slotID.Bytes)
	b.StartDate = start.Time
	b.EndDate = end.Time

	return b, nil
}
