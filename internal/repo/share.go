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

// ShareRepo defines the persistence operations for public trip shares.
type ShareRepo interface {
	// Create inserts a new share record and returns it.
	Create(ctx context.Context, share domain.SharedTrip) (domain.SharedTrip, error)

	// GetByTripID returns the existing share for a trip, if any.
	GetByTripID(ctx context.Context, tripID uuid.UUID) (domain.SharedTrip, error)

	// GetByToken resolves a public share token.
	GetByToken(ctx context.Context, token string) (domain.SharedTrip, error)
}

// pgShareRepo is the Postgres implementation of ShareRepo.
type pgShareRepo struct {
	db db
}

// NewShareRepo constructs a ShareRepo backed by the provided db connection.
func NewShareRepo(db db) ShareRepo {
	return &pgShareRepo{db: db}
}

const shareColumns = `id, trip_id, public_share_token, shared_by_user_id, can_copy, created_at`

func (r *pgShareRepo) Create(ctx context.Context, share domain.SharedTrip) (domain.SharedTrip, error) {
	const q = `
		INSERT INTO shared_trips (trip_id, public_share_token, shared_by_user_id, can_copy)
		VALUES (@trip_id, @token, @shared_by, @can_copy)
		RETURNING ` + shareColumns

	args := pgx.NamedArgs{
		"trip_id":   share.TripID,
		"token":     share.Token,
		"shared_by": share.SharedByUserID,
		"can_copy":  share.CanCopy,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanShare(row)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("repo.ShareRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgShareRepo) GetByTripID(ctx context.Context, tripID uuid.UUID) (domain.SharedTrip, error) {
	const q = `SELECT ` + shareColumns + ` FROM shared_trips WHERE trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	result, err := scanShare(row)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("repo.ShareRepo.GetByTripID: %w", err)
	}
	return result, nil
}

func (r *pgShareRepo) GetByToken(ctx context.Context, token string) (domain.SharedTrip, error) {
	const q = `SELECT ` + shareColumns + ` FROM shared_trips WHERE public_share_token = @token`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token})
	result, err := scanShare(row)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("repo.ShareRepo.GetByToken: %w", err)
	}
	return result, nil
}

// scanShare maps a single database row into a domain.SharedTrip.
func scanShare(s scanner) (domain.SharedTrip, error) {
	var (
		sh       domain.SharedTrip
		id       pgtype.UUID
		tripID   pgtype.UUID
		sharedBy pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &sh.Token, &sharedBy, &sh.CanCopy, &sh.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SharedTrip{}, domain.ErrNotFound
		}
		return domain.SharedTrip{}, err
	}

	sh.ID = uuid.UUID(id.Bytes)
	sh.TripID = uuid.UUID(tripID.Bytes)
	sh.SharedByUserID = uuid.UUID(sharedBy.Bytes)

	return sh, nil
}
