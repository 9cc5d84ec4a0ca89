package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
)

// Consumer-side interfaces for the services the handlers call. Each is
// satisfied by the corresponding service type; tests substitute doubles.

// TripAPI defines the trip operations needed by handlers.
type TripAPI interface {
	Create(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
}

// StopAPI defines the stop operations needed by handlers.
type StopAPI interface {
	Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	Get(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error)
	List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error)
	Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	Delete(ctx context.Context, userID, tripID, stopID uuid.UUID) error
}

// ActivityAPI defines the activity operations needed by handlers.
type ActivityAPI interface {
	Create(ctx context.Context, userID, tripID uuid.UUID, activity domain.Activity) (domain.Activity, planner.BudgetVerdict, error)
	ListByStop(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error)
	Delete(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error
}

// BudgetAPI defines the budget operations needed by handlers.
type BudgetAPI interface {
	CreateRecord(ctx context.Context, userID uuid.UUID, record domain.BudgetRecord) (domain.BudgetRecord, planner.BudgetVerdict, error)
	ListRecords(ctx context.Context, userID, tripID uuid.UUID) ([]domain.BudgetRecord, error)
	DeleteRecord(ctx context.Context, userID, tripID, recordID uuid.UUID) error
	Summary(ctx context.Context, userID, tripID uuid.UUID) (domain.BudgetSummary, error)
}

// ItineraryAPI defines the derived read models needed by handlers.
type ItineraryAPI interface {
	CityView(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CityStop, error)
	DayView(ctx context.Context, userID, tripID uuid.UUID) ([]planner.ItineraryDay, error)
	Progress(ctx context.Context, userID, tripID uuid.UUID) (service.ProgressReport, error)
	TravelDays(ctx context.Context, userID, tripID uuid.UUID) ([]planner.TravelDay, error)
}

// ShareAPI defines the sharing operations needed by handlers.
type ShareAPI interface {
	Create(ctx context.Context, userID, tripID uuid.UUID, canCopy bool) (domain.SharedTrip, error)
	PublicView(ctx context.Context, token string) (service.PublicTrip, error)
	Copy(ctx context.Context, userID uuid.UUID, token string) (domain.Trip, error)
}

// UserAPI defines the account operations needed by handlers.
type UserAPI interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
}

// AdminAPI defines the analytics operations needed by handlers.
type AdminAPI interface {
	PlatformStats(ctx context.Context) (domain.PlatformStats, error)
	PopularDestinations(ctx context.Context, limit int) ([]domain.DestinationCount, error)
	TopUsers(ctx context.Context, limit int) ([]domain.UserTripCount, error)
	ActivityAnalytics(ctx context.Context) ([]domain.CategoryCount, error)
}

// SettingsAPI defines the trip settings operations needed by handlers.
type SettingsAPI interface {
	Get(ctx context.Context, userID, tripID uuid.UUID) (domain.TripSettings, error)
	Put(ctx context.Context, userID uuid.UUID, settings domain.TripSettings) (domain.TripSettings, error)
}

// ParkingAPI defines the parking operations needed by handlers.
type ParkingAPI interface {
	ListSlots(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.ParkingSlot, error)
	Book(ctx context.Context, userID uuid.UUID, booking domain.ParkingBooking) (domain.ParkingBooking, error)
	Cancel(ctx context.Context, userID, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error)
}
