package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackingItem is a single entry on a trip's packing list.
type PackingItem struct {
	Name   string `json:"name"`
	Packed bool   `json:"packed"`
}

// TripSettings holds per-trip user preferences that the original client
// kept in browser storage. Owned by the backend so the list follows the
// trip, not the device.
type TripSettings struct {
	TripID      uuid.UUID
	PackingList []PackingItem
	UpdatedAt   time.Time
}
