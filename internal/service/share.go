package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/auth"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// ShareService implements public trip sharing: minting share links,
// serving the public view behind a token, and copying a shared trip into
// another account.
type ShareService struct {
	trips      repo.TripRepo
	stops      repo.StopRepo
	activities repo.ActivityRepo
	shares     repo.ShareRepo
	users      repo.UserRepo
	loader     *SnapshotLoader
}

// NewShareService constructs a ShareService.
func NewShareService(trips repo.TripRepo, stops repo.StopRepo, activities repo.ActivityRepo, shares repo.ShareRepo, users repo.UserRepo, loader *SnapshotLoader) *ShareService {
	return &ShareService{trips: trips, stops: stops, activities: activities, shares: shares, users: users, loader: loader}
}

// Create mints a share link for the trip, or returns the existing one if
// the trip is already shared. Sharing a trip makes it publicly readable
// by anyone who holds the token.
func (s *ShareService) Create(ctx context.Context, userID, tripID uuid.UUID, canCopy bool) (domain.SharedTrip, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}

	existing, err := s.shares.GetByTripID(ctx, tripID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.SharedTrip{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}

	token, err := auth.NewShareToken()
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}
	share, err := s.shares.Create(ctx, domain.SharedTrip{
		TripID:         tripID,
		Token:          token,
		SharedByUserID: userID,
		CanCopy:        canCopy,
	})
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}
	return share, nil
}

// PublicTrip is the anonymous read model served behind a share token.
type PublicTrip struct {
	Snapshot domain.TripSnapshot `json:"snapshot"`
	SharedBy string              `json:"shared_by"`
	CanCopy  bool                `json:"can_copy"`
}

// PublicView resolves a share token to the full trip snapshot. No
// authentication required; an unknown token is ErrNotFound.
func (s *ShareService) PublicView(ctx context.Context, token string) (PublicTrip, error) {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return PublicTrip{}, fmt.Errorf("service.ShareService.PublicView: %w", err)
	}
	snap, err := s.loader.Load(ctx, share.TripID)
	if err != nil {
		return PublicTrip{}, fmt.Errorf("service.ShareService.PublicView: %w", err)
	}
	sharer, err := s.users.GetByID(ctx, share.SharedByUserID)
	if err != nil {
		return PublicTrip{}, fmt.Errorf("service.ShareService.PublicView: %w", err)
	}
	return PublicTrip{
		Snapshot: snap,
		SharedBy: sharer.FirstName + " " + sharer.LastName,
		CanCopy:  share.CanCopy,
	}, nil
}

// Copy clones a shared trip — its stops and activities, but not its
// budget records or share state — into the calling user's account.
// Returns domain.ErrValidation if the share does not permit copying.
func (s *ShareService) Copy(ctx context.Context, userID uuid.UUID, token string) (domain.Trip, error) {
	share, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ShareService.Copy: %w", err)
	}
	if !share.CanCopy {
		return domain.Trip{}, fmt.Errorf("%w: this share does not allow copying", domain.ErrValidation)
	}
	snap, err := s.loader.Load(ctx, share.TripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ShareService.Copy: %w", err)
	}

	src := snap.Trip
	copied, err := s.trips.Create(ctx, domain.Trip{
		UserID:      userID,
		Name:        src.Name + " (copy)",
		Description: src.Description,
		StartDate:   src.StartDate,
		EndDate:     src.EndDate,
		BudgetLimit: src.BudgetLimit,
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ShareService.Copy: %w", err)
	}

	// Activity rows hang off stops, so clone stop by stop and carry the
	// old-to-new stop ID mapping through.
	stopIDs := make(map[uuid.UUID]uuid.UUID, len(snap.Stops))
	for _, stop := range snap.Stops {
		newStop := stop
		newStop.ID = uuid.Nil
		newStop.TripID = copied.ID
		created, err := s.stops.Create(ctx, newStop)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.ShareService.Copy: %w", err)
		}
		stopIDs[stop.ID] = created.ID
	}
	for _, activity := range snap.Activities {
		newStopID, ok := stopIDs[activity.StopID]
		if !ok {
			return domain.Trip{}, fmt.Errorf("service.ShareService.Copy: %w: activity %s references missing stop", domain.ErrDataIntegrity, activity.ID)
		}
		newActivity := activity
		newActivity.ID = uuid.Nil
		newActivity.StopID = newStopID
		if _, err := s.activities.Create(ctx, newActivity); err != nil {
			return domain.Trip{}, fmt.Errorf("service.ShareService.Copy: %w", err)
		}
	}
	return copied, nil
}
