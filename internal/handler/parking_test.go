package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

func parkingSlotFixture(stopID uuid.UUID) domain.ParkingSlot {
	perDay := decimal.RequireFromString("12.50")
	return domain.ParkingSlot{
		ID:                 uuid.MustParse("0f8fad5b-0000-0000-0000-0000000000ee"),
		StopID:             stopID,
		SlotNumber:         "A-14",
		Location:           "Gare du Nord P2",
		AvailabilityStatus: domain.ParkingAvailable,
		CostPerDay:         &perDay,
	}
}

func TestListParkingSlots_OK(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	stop := stopFixture(trip.ID)
	parking := &mockParkingAPI{
		listSlots: func(_ context.Context, _, tripID, stopID uuid.UUID) ([]domain.ParkingSlot, error) {
			assert.Equal(t, trip.ID, tripID)
			assert.Equal(t, stop.ID, stopID)
			return []domain.ParkingSlot{parkingSlotFixture(stop.ID)}, nil
		},
	}
	router := newTestRouter(apiSet{parking: parking}, &user)

	url := "/api/v1/trips/" + trip.ID.String() + "/stops/" + stop.ID.String() + "/parking"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		SlotNumber         string `json:"slot_number"`
		AvailabilityStatus string `json:"availability_status"`
		CostPerDay         string `json:"cost_per_day"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "A-14", resp[0].SlotNumber)
	assert.Equal(t, "available", resp[0].AvailabilityStatus)
	assert.Equal(t, "12.5", resp[0].CostPerDay)
}

func TestCreateParkingBooking_Created(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	slot := parkingSlotFixture(uuid.New())
	parking := &mockParkingAPI{
		book: func(_ context.Context, userID uuid.UUID, booking domain.ParkingBooking) (domain.ParkingBooking, error) {
			assert.Equal(t, user.ID, userID)
			assert.Equal(t, trip.ID, booking.TripID)
			assert.Equal(t, slot.ID, booking.ParkingSlotID)
			booking.ID = uuid.New()
			booking.TotalCost = decimal.RequireFromString("50")
			booking.BookingStatus = domain.BookingConfirmed
			booking.CreatedAt = time.Now()
			return booking, nil
		},
	}
	router := newTestRouter(apiSet{parking: parking}, &user)

	body := `{"parking_slot_id":"` + slot.ID.String() + `","start_date":"2025-06-02","end_date":"2025-06-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/"+trip.ID.String()+"/parking/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		TotalCost     string `json:"total_cost"`
		BookingStatus string `json:"booking_status"`
		StartDate     string `json:"start_date"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "50", resp.TotalCost)
	assert.Equal(t, "confirmed", resp.BookingStatus)
	assert.Equal(t, "2025-06-02", resp.StartDate)
}

func TestCreateParkingBooking_SlotTaken(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	parking := &mockParkingAPI{
		book: func(_ context.Context, _ uuid.UUID, _ domain.ParkingBooking) (domain.ParkingBooking, error) {
			return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Book: %w: slot is not available", domain.ErrValidation)
		},
	}
	router := newTestRouter(apiSet{parking: parking}, &user)

	body := `{"parking_slot_id":"` + uuid.NewString() + `","start_date":"2025-06-02","end_date":"2025-06-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/"+trip.ID.String()+"/parking/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "slot is not available")
}

func TestCancelParkingBooking_OK(t *testing.T) {
	user := travellerFixture()
	trip := tripFixture()
	bookingID := uuid.New()
	parking := &mockParkingAPI{
		cancel: func(_ context.Context, _, tripID, id uuid.UUID) (domain.ParkingBooking, error) {
			assert.Equal(t, trip.ID, tripID)
			assert.Equal(t, bookingID, id)
			return domain.ParkingBooking{
				ID:            id,
				TripID:        tripID,
				BookingStatus: domain.BookingCancelled,
			}, nil
		},
	}
	router := newTestRouter(apiSet{parking: parking}, &user)

	url := "/api/v1/trips/" + trip.ID.String() + "/parking/bookings/" + bookingID.String() + "/cancel"
	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"booking_status":"cancelled"`)
}
