package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stop represents a city visited during a trip.
// SequenceOrder is a positive integer, unique within a trip, and defines
// the itinerary order independently of the arrival dates.
type Stop struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	CityName      string
	Country       string
	ArrivalDate   time.Time
	DepartureDate time.Time
	SequenceOrder int
	CostIndex     *decimal.Decimal // rough 1-10 expensiveness scale, nil when unknown
	Description   string
	CreatedAt     time.Time
}
