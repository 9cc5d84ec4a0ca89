package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

type parkingSlotResponse struct {
	ID                 uuid.UUID        `json:"id"`
	StopID             uuid.UUID        `json:"stop_id"`
	SlotNumber         string           `json:"slot_number"`
	Location           string           `json:"location,omitempty"`
	AvailabilityStatus string           `json:"availability_status"`
	CostPerHour        *decimal.Decimal `json:"cost_per_hour,omitempty"`
	CostPerDay         *decimal.Decimal `json:"cost_per_day,omitempty"`
	MaxHours           *int             `json:"max_hours,omitempty"`
}

func toParkingSlotResponse(s domain.ParkingSlot) parkingSlotResponse {
	return parkingSlotResponse{
		ID:                 s.ID,
		StopID:             s.StopID,
		SlotNumber:         s.SlotNumber,
		Location:           s.Location,
		AvailabilityStatus: s.AvailabilityStatus,
		CostPerHour:        s.CostPerHour,
		CostPerDay:         s.CostPerDay,
		MaxHours:           s.MaxHours,
	}
}

type parkingBookingPayload struct {
	ParkingSlotID uuid.UUID          `json:"parking_slot_id"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
}

type parkingBookingResponse struct {
	ID            uuid.UUID          `json:"id"`
	TripID        uuid.UUID          `json:"trip_id"`
	ParkingSlotID uuid.UUID          `json:"parking_slot_id"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
	TotalCost     decimal.Decimal    `json:"total_cost"`
	BookingStatus string             `json:"booking_status"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toParkingBookingResponse(b domain.ParkingBooking) parkingBookingResponse {
	return parkingBookingResponse{
		ID:            b.ID,
		TripID:        b.TripID,
		ParkingSlotID: b.ParkingSlotID,
		StartDate:     openapi_types.Date{Time: b.StartDate},
		EndDate:       openapi_types.Date{Time: b.EndDate},
		TotalCost:     b.TotalCost,
		BookingStatus: b.BookingStatus,
		CreatedAt:     b.CreatedAt,
	}
}

// ListParkingSlots handles GET /api/v1/trips/{tripID}/stops/{stopID}/parking.
func (h *Handlers) ListParkingSlots(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok1 := pathUUID(r, "tripID")
	stopID, ok2 := pathUUID(r, "stopID")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid id in path")
		return
	}

	slots, err := h.parking.ListSlots(r.Context(), user.ID, tripID, stopID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	items := make([]parkingSlotResponse, 0, len(slots))
	for _, s := range slots {
		items = append(items, toParkingSlotResponse(s))
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateParkingBooking handles POST /api/v1/trips/{tripID}/parking/bookings.
func (h *Handlers) CreateParkingBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}
	var payload parkingBookingPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	booking, err := h.parking.Book(r.Context(), user.ID, domain.ParkingBooking{
		TripID:        tripID,
		ParkingSlotID: payload.ParkingSlotID,
		StartDate:     payload.StartDate.Time,
		EndDate:       payload.EndDate.Time,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParkingBookingResponse(booking))
}

// CancelParkingBooking handles POST /api/v1/trips/{tripID}/parking/bookings/{bookingID}/cancel.
func (h *Handlers) CancelParkingBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok1 := pathUUID(r, "tripID")
	bookingID, ok2 := pathUUID(r, "bookingID")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid id in path")
		return
	}

	booking, err := h.parking.Cancel(r.Context(), user.ID, tripID, bookingID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParkingBookingResponse(booking))
}
