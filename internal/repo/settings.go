package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// SettingsRepo defines the persistence operations for per-trip settings.
type SettingsRepo interface {
	// Get returns the settings for a trip. A trip with no settings row
	// yet gets empty defaults, not domain.ErrNotFound.
	Get(ctx context.Context, tripID uuid.UUID) (domain.TripSettings, error)

	// Upsert stores the settings for a trip, creating the row on first write.
	Upsert(ctx context.Context, settings domain.TripSettings) (domain.TripSettings, error)
}

// pgSettingsRepo is the Postgres implementation of SettingsRepo.
// The packing list is stored as a JSONB document; there is no value in
// relational structure for an ordered user-edited checklist.
type pgSettingsRepo struct {
	db db
}

// NewSettingsRepo constructs a SettingsRepo backed by the provided db connection.
func NewSettingsRepo(db db) SettingsRepo {
	return &pgSettingsRepo{db: db}
}

func (r *pgSettingsRepo) Get(ctx context.Context, tripID uuid.UUID) (domain.TripSettings, error) {
	const q = `SELECT packing_list, updated_at FROM trip_settings WHERE trip_id = @trip_id`

	settings := domain.TripSettings{TripID: tripID, PackingList: []domain.PackingItem{}}

	var raw []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&raw, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings, nil
		}
		return domain.TripSettings{}, fmt.Errorf("repo.SettingsRepo.Get: %w", err)
	}

	if err := json.Unmarshal(raw, &settings.PackingList); err != nil {
		return domain.TripSettings{}, fmt.Errorf("repo.SettingsRepo.Get: unmarshal packing list: %w", err)
	}
	return settings, nil
}

func (r *pgSettingsRepo) Upsert(ctx context.Context, settings domain.TripSettings) (domain.TripSettings, error) {
	raw, err := json.Marshal(settings.PackingList)
	if err != nil {
		return domain.TripSettings{}, fmt.Errorf("repo.SettingsRepo.Upsert: marshal packing list: %w", err)
	}

	const q = `
		INSERT INTO trip_settings (trip_id, packing_list, updated_at)
		VALUES (@trip_id, @packing_list, now())
		ON CONFLICT (trip_id) DO UPDATE
		SET packing_list = EXCLUDED.packing_list,
		    updated_at   = EXCLUDED.updated_at
		RETURNING updated_at`

	args := pgx.NamedArgs{
		"trip_id":      settings.TripID,
		"packing_list": raw,
	}

	if err := r.db.QueryRow(ctx, q, args).Scan(&settings.UpdatedAt); err != nil {
		return domain.TripSettings{}, fmt.Errorf("repo.SettingsRepo.Upsert: %w", err)
	}
	return settings, nil
}
