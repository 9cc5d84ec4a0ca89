package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// HashedPassword is a "salt$hash" PBKDF2 digest; the plain password is
// never stored. Admin access is a column, not a credential.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	FirstName      string
	LastName       string
	IsAdmin        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
