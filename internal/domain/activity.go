package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Activity represents something to do at a stop.
// TimeStart, when set, is a 24-hour "HH:MM" string; the zero-padded
// format keeps lexicographic and chronological order identical.
type Activity struct {
	ID            uuid.UUID
	StopID        uuid.UUID
	Name          string
	Category      ActivityCategory
	DateScheduled time.Time
	TimeStart     *string
	DurationHours *decimal.Decimal
	Cost          *decimal.Decimal // nil and zero both mean free
	Description   string
	CreatedAt     time.Time
}
