package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// BudgetRepo defines the persistence operations for BudgetRecords.
// Records are append-only: create, list, delete — never update.
type BudgetRepo interface {
	// Create inserts a new budget record and returns the persisted record.
	Create(ctx context.Context, record domain.BudgetRecord) (domain.BudgetRecord, error)

	// ListByTripID returns all budget records for a trip ordered by date descending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetRecord, error)

	// Delete removes a record by ID, scoped to the given tripID.
	Delete(ctx context.Context, tripID, recordID uuid.UUID) error
}

// pgBudgetRepo is the Postgres implementation of BudgetRepo.
type pgBudgetRepo struct {
	db db
}

// NewBudgetRepo constructs a BudgetRepo backed by the provided db connection.
func NewBudgetRepo(db db) BudgetRepo {
	return &pgBudgetRepo{db: db}
}

func (r *pgBudgetRepo) Create(ctx context.Context, record domain.BudgetRecord) (domain.BudgetRecord, error) {
	const q = `
		INSERT INTO budget_records (trip_id, category, amount, date, notes)
		VALUES (@trip_id, @category, @amount, coalesce(@date, now()), @notes)
		RETURNING id, trip_id, category, amount, date, notes, created_at`

	var date any
	if !record.Date.IsZero() {
		date = record.Date
	}

	args := pgx.NamedArgs{
		"trip_id":  record.TripID,
		"category": string(record.Category),
		"amount":   record.Amount,
		"date":     date,
		"notes":    record.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBudgetRecord(row)
	if err != nil {
		return domain.BudgetRecord{}, fmt.Errorf("repo.BudgetRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBudgetRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetRecord, error) {
	const q = `
		SELECT id, trip_id, category, amount, date, notes, created_at
		FROM budget_records
		WHERE trip_id = @trip_id
		ORDER BY date DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var records []domain.BudgetRecord
	for rows.Next() {
		rec, err := scanBudgetRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BudgetRepo.ListByTripID: scan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetRepo.ListByTripID: rows: %w", err)
	}

	return records, nil
}

func (r *pgBudgetRepo) Delete(ctx context.Context, tripID, recordID uuid.UUID) error {
	const q = `DELETE FROM budget_records WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": recordID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.BudgetRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BudgetRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanBudgetRecord maps a single database row into a domain.BudgetRecord.
func scanBudgetRecord(s scanner) (domain.BudgetRecord, error) {
	var (
		rec      domain.BudgetRecord
		id       pgtype.UUID
		tripID   pgtype.UUID
		category string
	)

	err := s.Scan(&id, &tripID, &category, &rec.Amount, &rec.Date, &rec.Notes, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BudgetRecord{}, domain.ErrNotFound
		}
		return domain.BudgetRecord{}, err
	}

	rec.ID = uuid.UUID(id.Bytes)
	rec.TripID = uuid.UUID(tripID.Bytes)
	rec.Category = domain.BudgetCategory(category)

	return rec, nil
}
