package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
)

// budgetFixture wires a BudgetService around one owned trip with the
// given existing records and no activities.
func budgetFixture(trip domain.Trip, existing []domain.BudgetRecord, cache *recordingCache) *service.BudgetService {
	trips := tripRepoOwning(trip)
	budgets := &mockBudgetRepo{
		create: func(_ context.Context, r domain.BudgetRecord) (domain.BudgetRecord, error) { return r, nil },
		listByTripID: func(context.Context, uuid.UUID) ([]domain.BudgetRecord, error) {
			return existing, nil
		},
		delete: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
	}
	stops := &mockStopRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Stop, error) { return nil, nil },
	}
	activities := &mockActivityRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Activity, error) { return nil, nil },
	}
	loader := service.NewSnapshotLoader(trips, stops, activities, budgets, nil)
	var c service.TripCache
	if cache != nil {
		c = cache
	}
	return service.NewBudgetService(trips, budgets, loader, c)
}

func TestBudgetService_CreateRecord_Valid(t *testing.T) {
	trip := validTrip()
	svc := budgetFixture(trip, nil, nil)

	record := domain.BudgetRecord{TripID: trip.ID, Category: domain.BudgetMeals, Amount: dec("42.50")}
	got, verdict, err := svc.CreateRecord(context.Background(), ownerID, record)

	require.NoError(t, err)
	assert.Equal(t, domain.BudgetMeals, got.Category)
	assert.True(t, verdict.Allowed)
}

func TestBudgetService_CreateRecord_UnknownCategory(t *testing.T) {
	trip := validTrip()
	svc := budgetFixture(trip, nil, nil)

	record := domain.BudgetRecord{TripID: trip.ID, Category: "bribes", Amount: dec("100")}
	_, _, err := svc.CreateRecord(context.Background(), ownerID, record)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBudgetService_CreateRecord_NonPositiveAmount(t *testing.T) {
	trip := validTrip()
	svc := budgetFixture(trip, nil, nil)

	for _, amount := range []string{"0", "-10"} {
		record := domain.BudgetRecord{TripID: trip.ID, Category: domain.BudgetMeals, Amount: dec(amount)}
		_, _, err := svc.CreateRecord(context.Background(), ownerID, record)
		assert.ErrorIs(t, err, domain.ErrValidation, "amount %s", amount)
	}
}

func TestBudgetService_CreateRecord_OverBudgetIsAdvisory(t *testing.T) {
	trip := validTrip()
	limit := dec("1000")
	trip.BudgetLimit = &limit
	existing := []domain.BudgetRecord{{Category: domain.BudgetStay, Amount: dec("950")}}
	svc := budgetFixture(trip, existing, nil)

	record := domain.BudgetRecord{TripID: trip.ID, Category: domain.BudgetTransport, Amount: dec("100")}
	got, verdict, err := svc.CreateRecord(context.Background(), ownerID, record)

	// Logging an overspend succeeds; the verdict carries the warning.
	require.NoError(t, err)
	assert.Equal(t, dec("100"), got.Amount)
	assert.False(t, verdict.Allowed)
	assert.True(t, verdict.ExceededBy.Equal(dec("50")))
}

func TestBudgetService_CreateRecord_InvalidatesCache(t *testing.T) {
	trip := validTrip()
	cache := &recordingCache{}
	svc := budgetFixture(trip, nil, cache)

	record := domain.BudgetRecord{TripID: trip.ID, Category: domain.BudgetMeals, Amount: dec("10")}
	_, _, err := svc.CreateRecord(context.Background(), ownerID, record)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{trip.ID}, cache.invalidated)
}

func TestBudgetService_Summary_AllCategoriesPresent(t *testing.T) {
	trip := validTrip()
	existing := []domain.BudgetRecord{
		{Category: domain.BudgetStay, Amount: dec("300")},
		{Category: domain.BudgetStay, Amount: dec("200")},
		{Category: domain.BudgetMeals, Amount: dec("80")},
	}
	svc := budgetFixture(trip, existing, nil)

	summary, err := svc.Summary(context.Background(), ownerID, trip.ID)

	require.NoError(t, err)
	assert.Len(t, summary.ByCategory, 7, "every category appears, zero-filled")
	assert.True(t, summary.ByCategory[domain.BudgetStay].Equal(dec("500")))
	assert.True(t, summary.ByCategory[domain.BudgetParking].IsZero())
	assert.True(t, summary.Total.Equal(dec("580")))
	assert.False(t, summary.OverBudget)
}

func TestBudgetService_Summary_TripNotOwned(t *testing.T) {
	trip := validTrip()
	svc := budgetFixture(trip, nil, nil)

	_, err := svc.Summary(context.Background(), uuid.New(), trip.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetService_ListRecords_EmptyIsNonNil(t *testing.T) {
	trip := validTrip()
	svc := budgetFixture(trip, nil, nil)

	records, err := svc.ListRecords(context.Background(), ownerID, trip.ID)

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
