package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

// ParkingService implements slot listing and bookings. A confirmed
// booking mirrors its cost into the trip's budget as a "parking" record
// so the spend shows up in the summary like any other expense.
type ParkingService struct {
	trips   repo.TripRepo
	stops   repo.StopRepo
	parking repo.ParkingRepo
	budgets repo.BudgetRepo
	cache   TripCache
}

// NewParkingService constructs a ParkingService. cache may be nil.
func NewParkingService(trips repo.TripRepo, stops repo.StopRepo, parking repo.ParkingRepo, budgets repo.BudgetRepo, cache TripCache) *ParkingService {
	return &ParkingService{trips: trips, stops: stops, parking: parking, budgets: budgets, cache: cache}
}

// ListSlots returns the parking slots near a stop.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParkingService) ListSlots(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.ParkingSlot, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return nil, fmt.Errorf("service.ParkingService.ListSlots: %w", err)
	}
	if _, err := s.stops.GetByID(ctx, tripID, stopID); err != nil {
		return nil, fmt.Errorf("service.ParkingService.ListSlots: %w", err)
	}
	slots, err := s.parking.ListSlotsByStop(ctx, stopID)
	if err != nil {
		return nil, fmt.Errorf("service.ParkingService.ListSlots: %w", err)
	}
	if slots == nil {
		slots = []domain.ParkingSlot{}
	}
	return slots, nil
}

// Book reserves a slot for a date range within the trip. The total cost
// is the slot's daily rate times the inclusive day count, and is written
// to the trip's budget alongside the booking.
// Returns domain.ErrValidation if the slot is not available or the dates
// fall outside the trip.
func (s *ParkingService) Book(ctx context.Context, userID uuid.UUID, booking domain.ParkingBooking) (domain.ParkingBooking, error) {
	trip, err := ownedTrip(ctx, s.trips, userID, booking.TripID)
	if err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Book: %w", err)
	}
	if booking.EndDate.Before(booking.StartDate) {
		return domain.ParkingBooking{}, fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if err := planner.ValidateWithin(booking.StartDate, &trip.StartDate, &trip.EndDate, "start_date"); err != nil {
		return domain.ParkingBooking{}, err
	}
	if err := planner.ValidateWithin(booking.EndDate, &trip.StartDate, &trip.EndDate, "end_date"); err != nil {
		return domain.ParkingBooking{}, err
	}

	slot, err := s.parking.GetSlot(ctx, booking.ParkingSlotID)
	if err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Book: %w", err)
	}
	if slot.AvailabilityStatus != domain.ParkingAvailable {
		return domain.ParkingBooking{}, fmt.Errorf("%w: slot %s is not available", domain.ErrValidation, slot.SlotNumber)
	}

	days := int(booking.EndDate.Sub(booking.StartDate).Hours()/24) + 1
	rate := decimal.Zero
	if slot.CostPerDay != nil {
		rate = *slot.CostPerDay
	}
	booking.TotalCost = rate.Mul(decimal.NewFromInt(int64(days)))
	booking.BookingStatus = domain.BookingConfirmed

	created, err := s.parking.CreateBooking(ctx, booking)
	if err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Book: %w", err)
	}
	if err := s.parking.UpdateSlotStatus(ctx, slot.ID, domain.ParkingBooked); err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Book: %w", err)
	}

	if created.TotalCost.IsPositive() {
		_, err = s.budgets.Create(ctx, domain.BudgetRecord{
			TripID:   booking.TripID,
			Category: domain.BudgetParking,
			Amount:   created.TotalCost,
			Date:     booking.StartDate,
			Notes:    fmt.Sprintf("parking slot %s, %d day(s)", slot.SlotNumber, days),
		})
		if err != nil {
			return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Book: %w", err)
		}
	}
	s.invalidate(ctx, booking.TripID)
	return created, nil
}

// Cancel marks a booking cancelled and frees its slot. The mirrored
// budget record stays; cancellation fees are the traveller's problem to
// edit out if refunded.
func (s *ParkingService) Cancel(ctx context.Context, userID, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error) {
	if _, err := ownedTrip(ctx, s.trips, userID, tripID); err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Cancel: %w", err)
	}
	booking, err := s.parking.GetBooking(ctx, tripID, bookingID)
	if err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Cancel: %w", err)
	}
	if booking.BookingStatus == domain.BookingCancelled {
		return domain.ParkingBooking{}, fmt.Errorf("%w: booking is already cancelled", domain.ErrValidation)
	}

	if err := s.parking.UpdateBookingStatus(ctx, tripID, bookingID, domain.BookingCancelled); err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Cancel: %w", err)
	}
	if err := s.parking.UpdateSlotStatus(ctx, booking.ParkingSlotID, domain.ParkingAvailable); err != nil {
		return domain.ParkingBooking{}, fmt.Errorf("service.ParkingService.Cancel: %w", err)
	}
	booking.BookingStatus = domain.BookingCancelled
	s.invalidate(ctx, tripID)
	return booking, nil
}

func (s *ParkingService) invalidate(ctx context.Context, tripID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.InvalidateTrip(ctx, tripID)
	}
}
