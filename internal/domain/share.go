package domain

import (
	"time"

	"github.com/google/uuid"
)

// SharedTrip is a public share link for a trip.
// Token is an unguessable URL-safe string; anyone holding it can view the
// trip, and can copy it into their own account when CanCopy is set.
type SharedTrip struct {
	ID             uuid.UUID
	TripID         uuid.UUID
	Token          string
	SharedByUserID uuid.UUID
	CanCopy        bool
	CreatedAt      time.Time
}
