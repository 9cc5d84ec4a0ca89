package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Parking slot availability states.
const (
	ParkingAvailable   = "available"
	ParkingBooked      = "booked"
	ParkingMaintenance = "maintenance"
)

// Parking booking states.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// ParkingSlot is a bookable parking space near a stop.
type ParkingSlot struct {
	ID                 uuid.UUID
	StopID             uuid.UUID
	SlotNumber         string
	Location           string
	AvailabilityStatus string
	CostPerHour        *decimal.Decimal
	CostPerDay         *decimal.Decimal
	MaxHours           *int
	CreatedAt          time.Time
}

// ParkingBooking reserves a slot for a date range within a trip.
// TotalCost is computed at booking time from the slot's daily rate and
// is mirrored into the trip's budget as a "parking" record.
type ParkingBooking struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	ParkingSlotID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	TotalCost     decimal.Decimal
	BookingStatus string
	CreatedAt     time.Time
}
