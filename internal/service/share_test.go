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

// shareFixture wires a ShareService around one owned trip with one stop
// and one activity, optionally already shared.
type shareFixture struct {
	svc      *service.ShareService
	trip     domain.Trip
	stop     domain.Stop
	created  []domain.Trip
	newStops []domain.Stop
	newActs  []domain.Activity
}

func newShareFixture(t *testing.T, existingShare *domain.SharedTrip) *shareFixture {
	t.Helper()
	f := &shareFixture{trip: validTrip()}
	f.stop = validStop(f.trip)
	activity := validActivity(f.stop)
	activity.ID = uuid.New()

	trips := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			if id != f.trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return f.trip, nil
		},
		create: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			tr.ID = uuid.New()
			f.created = append(f.created, tr)
			return tr, nil
		},
	}
	stops := &mockStopRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Stop, error) {
			return []domain.Stop{f.stop}, nil
		},
		create: func(_ context.Context, s domain.Stop) (domain.Stop, error) {
			s.ID = uuid.New()
			f.newStops = append(f.newStops, s)
			return s, nil
		},
	}
	activities := &mockActivityRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.Activity, error) {
			return []domain.Activity{activity}, nil
		},
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) {
			a.ID = uuid.New()
			f.newActs = append(f.newActs, a)
			return a, nil
		},
	}
	budgets := &mockBudgetRepo{
		listByTripID: func(context.Context, uuid.UUID) ([]domain.BudgetRecord, error) {
			return []domain.BudgetRecord{{Category: domain.BudgetStay, Amount: dec("500")}}, nil
		},
	}
	shares := &mockShareRepo{
		getByTripID: func(context.Context, uuid.UUID) (domain.SharedTrip, error) {
			if existingShare != nil {
				return *existingShare, nil
			}
			return domain.SharedTrip{}, domain.ErrNotFound
		},
		getByToken: func(_ context.Context, token string) (domain.SharedTrip, error) {
			if existingShare != nil && token == existingShare.Token {
				return *existingShare, nil
			}
			return domain.SharedTrip{}, domain.ErrNotFound
		},
		create: func(_ context.Context, s domain.SharedTrip) (domain.SharedTrip, error) {
			s.ID = uuid.New()
			return s, nil
		},
	}
	users := &mockUserRepo{
		getByID: func(context.Context, uuid.UUID) (domain.User, error) {
			return domain.User{ID: ownerID, FirstName: "Priya", LastName: "Sharma"}, nil
		},
	}
	loader := service.NewSnapshotLoader(trips, stops, activities, budgets, nil)
	f.svc = service.NewShareService(trips, stops, activities, shares, users, loader)
	return f
}

func TestShareService_Create_MintsToken(t *testing.T) {
	f := newShareFixture(t, nil)

	share, err := f.svc.Create(context.Background(), ownerID, f.trip.ID, true)

	require.NoError(t, err)
	assert.NotEmpty(t, share.Token)
	assert.True(t, share.CanCopy)
	assert.Equal(t, ownerID, share.SharedByUserID)
}

func TestShareService_Create_ExistingShareIsReturned(t *testing.T) {
	existing := &domain.SharedTrip{
		ID:     uuid.New(),
		TripID: validTrip().ID,
		Token:  "existing-token",
	}
	f := newShareFixture(t, existing)

	share, err := f.svc.Create(context.Background(), ownerID, f.trip.ID, true)

	require.NoError(t, err)
	assert.Equal(t, "existing-token", share.Token, "sharing twice reuses the link")
}

func TestShareService_Create_NotOwner(t *testing.T) {
	f := newShareFixture(t, nil)

	_, err := f.svc.Create(context.Background(), uuid.New(), f.trip.ID, false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShareService_PublicView(t *testing.T) {
	existing := &domain.SharedTrip{
		TripID:         validTrip().ID,
		Token:          "tok",
		SharedByUserID: ownerID,
		CanCopy:        true,
	}
	f := newShareFixture(t, existing)

	view, err := f.svc.PublicView(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "Europe Summer", view.Snapshot.Trip.Name)
	assert.Equal(t, "Priya Sharma", view.SharedBy)
	assert.True(t, view.CanCopy)
	assert.Len(t, view.Snapshot.Stops, 1)
}

func TestShareService_PublicView_UnknownToken(t *testing.T) {
	f := newShareFixture(t, nil)

	_, err := f.svc.PublicView(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShareService_Copy(t *testing.T) {
	existing := &domain.SharedTrip{TripID: validTrip().ID, Token: "tok", CanCopy: true}
	f := newShareFixture(t, existing)

	copier := uuid.New()
	copied, err := f.svc.Copy(context.Background(), copier, "tok")

	require.NoError(t, err)
	assert.Equal(t, copier, copied.UserID)
	assert.Equal(t, "Europe Summer (copy)", copied.Name)
	require.Len(t, f.newStops, 1)
	assert.Equal(t, copied.ID, f.newStops[0].TripID, "stops are re-pointed at the copy")
	require.Len(t, f.newActs, 1)
	assert.Equal(t, f.newStops[0].ID, f.newActs[0].StopID, "activities follow their cloned stop")
}

func TestShareService_Copy_NotPermitted(t *testing.T) {
	existing := &domain.SharedTrip{TripID: validTrip().ID, Token: "tok", CanCopy: false}
	f := newShareFixture(t, existing)

	_, err := f.svc.Copy(context.Background(), uuid.New(), "tok")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
