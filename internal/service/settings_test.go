package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
)

type mockSettingsRepo struct {
	get    func(ctx context.Context, tripID uuid.UUID) (domain.TripSettings, error)
	upsert func(ctx context.Context, settings domain.TripSettings) (domain.TripSettings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context, tripID uuid.UUID) (domain.TripSettings, error) {
	return m.get(ctx, tripID)
}
func (m *mockSettingsRepo) Upsert(ctx context.Context, settings domain.TripSettings) (domain.TripSettings, error) {
	return m.upsert(ctx, settings)
}

var _ repo.SettingsRepo = (*mockSettingsRepo)(nil)

func TestSettingsService_Get_DefaultsWhenUnset(t *testing.T) {
	trip := validTrip()
	settings := &mockSettingsRepo{
		get: func(_ context.Context, tripID uuid.UUID) (domain.TripSettings, error) {
			return domain.TripSettings{TripID: tripID, PackingList: []domain.PackingItem{}}, nil
		},
	}
	svc := service.NewSettingsService(tripRepoOwning(trip), settings, nil)

	got, err := svc.Get(context.Background(), ownerID, trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, got.PackingList)
	assert.Empty(t, got.PackingList)
}

func TestSettingsService_Put_RoundTrip(t *testing.T) {
	trip := validTrip()
	settings := &mockSettingsRepo{
		upsert: func(_ context.Context, s domain.TripSettings) (domain.TripSettings, error) { return s, nil },
	}
	cache := &recordingCache{}
	svc := service.NewSettingsService(tripRepoOwning(trip), settings, cache)

	got, err := svc.Put(context.Background(), ownerID, domain.TripSettings{
		TripID:      trip.ID,
		PackingList: []domain.PackingItem{{Name: "Passport", Packed: true}, {Name: "Adapter"}},
	})

	require.NoError(t, err)
	assert.Len(t, got.PackingList, 2)
	assert.Equal(t, []uuid.UUID{trip.ID}, cache.invalidated)
}

func TestSettingsService_Put_EmptyItemName(t *testing.T) {
	trip := validTrip()
	svc := service.NewSettingsService(tripRepoOwning(trip), &mockSettingsRepo{}, nil)

	_, err := svc.Put(context.Background(), ownerID, domain.TripSettings{
		TripID:      trip.ID,
		PackingList: []domain.PackingItem{{Name: "   "}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSettingsService_Put_NotOwner(t *testing.T) {
	trip := validTrip()
	svc := service.NewSettingsService(tripRepoOwning(trip), &mockSettingsRepo{}, nil)

	_, err := svc.Put(context.Background(), uuid.New(), domain.TripSettings{TripID: trip.ID})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
