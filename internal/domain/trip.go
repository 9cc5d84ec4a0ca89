// Package domain contains the core data types for the GlobeTrotter API.
// This package has no dependencies on other internal packages and is
// imported by every other layer (planner, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip represents a single planned trip from start to finish.
// A trip is the top-level aggregate; stops, budget records, shares,
// settings, and parking bookings all belong to a trip.
type Trip struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	BudgetLimit *decimal.Decimal // nil means no limit was set
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DurationDays returns the trip length in whole days, inclusive of both
// the start and the end date. A same-day trip has a duration of 1.
func (t Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}
