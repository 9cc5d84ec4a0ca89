package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field — set only the ones your test needs; an unset method
// panics, which makes an unexpected call an immediate test failure.

type mockTripRepo struct {
	create     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listByUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listByUser(ctx, userID, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockStopRepo struct {
	create       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	getByID      func(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error)
	update       func(ctx context.Context, stop domain.Stop) (domain.Stop, error)
	delete       func(ctx context.Context, tripID, stopID uuid.UUID) error
}

func (m *mockStopRepo) Create(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, stop)
}
func (m *mockStopRepo) GetByID(ctx context.Context, tripID, stopID uuid.UUID) (domain.Stop, error) {
	return m.getByID(ctx, tripID, stopID)
}
func (m *mockStopRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockStopRepo) Update(ctx context.Context, stop domain.Stop) (domain.Stop, error) {
	return m.update(ctx, stop)
}
func (m *mockStopRepo) Delete(ctx context.Context, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, tripID, stopID)
}

var _ repo.StopRepo = (*mockStopRepo)(nil)

type mockActivityRepo struct {
	create       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	listByStopID func(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	delete       func(ctx context.Context, stopID, activityID uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	return m.create(ctx, activity)
}
func (m *mockActivityRepo) ListByStopID(ctx context.Context, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStopID(ctx, stopID)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityRepo) Delete(ctx context.Context, stopID, activityID uuid.UUID) error {
	return m.delete(ctx, stopID, activityID)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockBudgetRepo struct {
	create       func(ctx context.Context, record domain.BudgetRecord) (domain.BudgetRecord, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetRecord, error)
	delete       func(ctx context.Context, tripID, recordID uuid.UUID) error
}

func (m *mockBudgetRepo) Create(ctx context.Context, record domain.BudgetRecord) (domain.BudgetRecord, error) {
	return m.create(ctx, record)
}
func (m *mockBudgetRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.BudgetRecord, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockBudgetRepo) Delete(ctx context.Context, tripID, recordID uuid.UUID) error {
	return m.delete(ctx, tripID, recordID)
}

var _ repo.BudgetRepo = (*mockBudgetRepo)(nil)

type mockUserRepo struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockShareRepo struct {
	create      func(ctx context.Context, share domain.SharedTrip) (domain.SharedTrip, error)
	getByTripID func(ctx context.Context, tripID uuid.UUID) (domain.SharedTrip, error)
	getByToken  func(ctx context.Context, token string) (domain.SharedTrip, error)
}

func (m *mockShareRepo) Create(ctx context.Context, share domain.SharedTrip) (domain.SharedTrip, error) {
	return m.create(ctx, share)
}
func (m *mockShareRepo) GetByTripID(ctx context.Context, tripID uuid.UUID) (domain.SharedTrip, error) {
	return m.getByTripID(ctx, tripID)
}
func (m *mockShareRepo) GetByToken(ctx context.Context, token string) (domain.SharedTrip, error) {
	return m.getByToken(ctx, token)
}

var _ repo.ShareRepo = (*mockShareRepo)(nil)

type mockParkingRepo struct {
	listSlotsByStop     func(ctx context.Context, stopID uuid.UUID) ([]domain.ParkingSlot, error)
	getSlot             func(ctx context.Context, slotID uuid.UUID) (domain.ParkingSlot, error)
	updateSlotStatus    func(ctx context.Context, slotID uuid.UUID, status string) error
	createBooking       func(ctx context.Context, booking domain.ParkingBooking) (domain.ParkingBooking, error)
	getBooking          func(ctx context.Context, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error)
	updateBookingStatus func(ctx context.Context, tripID, bookingID uuid.UUID, status string) error
}

func (m *mockParkingRepo) ListSlotsByStop(ctx context.Context, stopID uuid.UUID) ([]domain.ParkingSlot, error) {
	return m.listSlotsByStop(ctx, stopID)
}
func (m *mockParkingRepo) GetSlot(ctx context.Context, slotID uuid.UUID) (domain.ParkingSlot, error) {
	return m.getSlot(ctx, slotID)
}
func (m *mockParkingRepo) UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, status string) error {
	return m.updateSlotStatus(ctx, slotID, status)
}
func (m *mockParkingRepo) CreateBooking(ctx context.Context, booking domain.ParkingBooking) (domain.ParkingBooking, error) {
	return m.createBooking(ctx, booking)
}
func (m *mockParkingRepo) GetBooking(ctx context.Context, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error) {
	return m.getBooking(ctx, tripID, bookingID)
}
func (m *mockParkingRepo) UpdateBookingStatus(ctx context.Context, tripID, bookingID uuid.UUID, status string) error {
	return m.updateBookingStatus(ctx, tripID, bookingID, status)
}

var _ repo.ParkingRepo = (*mockParkingRepo)(nil)

// recordingCache counts invalidations so tests can assert write paths
// drop the snapshot.
type recordingCache struct {
	invalidated []uuid.UUID
}

func (c *recordingCache) InvalidateTrip(_ context.Context, tripID uuid.UUID) error {
	c.invalidated = append(c.invalidated, tripID)
	return nil
}

var _ service.TripCache = (*recordingCache)(nil)
