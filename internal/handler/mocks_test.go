package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/handler"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/middleware"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
)

// ---- function-field mocks for the handler-facing service APIs --------------

type mockUserAPI struct {
	signup func(ctx context.Context, email, password, firstName, lastName string) (service.Session, error)
	login  func(ctx context.Context, email, password string) (service.Session, error)
}

func (m *mockUserAPI) Signup(ctx context.Context, email, password, firstName, lastName string) (service.Session, error) {
	return m.signup(ctx, email, password, firstName, lastName)
}

func (m *mockUserAPI) Login(ctx context.Context, email, password string) (service.Session, error) {
	return m.login(ctx, email, password)
}

type mockTripAPI struct {
	create func(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	get    func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	list   func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update func(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	delete func(ctx context.Context, userID, tripID uuid.UUID) error
}

func (m *mockTripAPI) Create(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, userID, trip)
}

func (m *mockTripAPI) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	return m.get(ctx, userID, tripID)
}

func (m *mockTripAPI) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, userID, p)
}

func (m *mockTripAPI) Update(ctx context.Context, userID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, userID, trip)
}

func (m *mockTripAPI) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.delete(ctx, userID, tripID)
}

type mockStopAPI struct {
	create func(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	get    func(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error)
	list   func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error)
	update func(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error)
	delete func(ctx context.Context, userID, tripID, stopID uuid.UUID) error
}

func (m *mockStopAPI) Create(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	return m.create(ctx, userID, stop)
}

func (m *mockStopAPI) Get(ctx context.Context, userID, tripID, stopID uuid.UUID) (domain.Stop, error) {
	return m.get(ctx, userID, tripID, stopID)
}

func (m *mockStopAPI) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Stop, error) {
	return m.list(ctx, userID, tripID)
}

func (m *mockStopAPI) Update(ctx context.Context, userID uuid.UUID, stop domain.Stop) (domain.Stop, error) {
	return m.update(ctx, userID, stop)
}

func (m *mockStopAPI) Delete(ctx context.Context, userID, tripID, stopID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, stopID)
}

type mockActivityAPI struct {
	create     func(ctx context.Context, userID, tripID uuid.UUID, activity domain.Activity) (domain.Activity, planner.BudgetVerdict, error)
	listByStop func(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error)
	delete     func(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error
}

func (m *mockActivityAPI) Create(ctx context.Context, userID, tripID uuid.UUID, activity domain.Activity) (domain.Activity, planner.BudgetVerdict, error) {
	return m.create(ctx, userID, tripID, activity)
}

func (m *mockActivityAPI) ListByStop(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.Activity, error) {
	return m.listByStop(ctx, userID, tripID, stopID)
}

func (m *mockActivityAPI) Delete(ctx context.Context, userID, tripID, stopID, activityID uuid.UUID) error {
	return m.delete(ctx, userID, tripID, stopID, activityID)
}

type mockBudgetAPI struct {
	createRecord func(ctx context.Context, userID uuid.UUID, record domain.BudgetRecord) (domain.BudgetRecord, planner.BudgetVerdict, error)
	listRecords  func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.BudgetRecord, error)
	deleteRecord func(ctx context.Context, userID, tripID, recordID uuid.UUID) error
	summary      func(ctx context.Context, userID, tripID uuid.UUID) (domain.BudgetSummary, error)
}

func (m *mockBudgetAPI) CreateRecord(ctx context.Context, userID uuid.UUID, record domain.BudgetRecord) (domain.BudgetRecord, planner.BudgetVerdict, error) {
	return m.createRecord(ctx, userID, record)
}

func (m *mockBudgetAPI) ListRecords(ctx context.Context, userID, tripID uuid.UUID) ([]domain.BudgetRecord, error) {
	return m.listRecords(ctx, userID, tripID)
}

func (m *mockBudgetAPI) DeleteRecord(ctx context.Context, userID, tripID, recordID uuid.UUID) error {
	return m.deleteRecord(ctx, userID, tripID, recordID)
}

func (m *mockBudgetAPI) Summary(ctx context.Context, userID, tripID uuid.UUID) (domain.BudgetSummary, error) {
	return m.summary(ctx, userID, tripID)
}

type mockItineraryAPI struct {
	cityView   func(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CityStop, error)
	dayView    func(ctx context.Context, userID, tripID uuid.UUID) ([]planner.ItineraryDay, error)
	progress   func(ctx context.Context, userID, tripID uuid.UUID) (service.ProgressReport, error)
	travelDays func(ctx context.Context, userID, tripID uuid.UUID) ([]planner.TravelDay, error)
}

func (m *mockItineraryAPI) CityView(ctx context.Context, userID, tripID uuid.UUID) ([]planner.CityStop, error) {
	return m.cityView(ctx, userID, tripID)
}

func (m *mockItineraryAPI) DayView(ctx context.Context, userID, tripID uuid.UUID) ([]planner.ItineraryDay, error) {
	return m.dayView(ctx, userID, tripID)
}

func (m *mockItineraryAPI) Progress(ctx context.Context, userID, tripID uuid.UUID) (service.ProgressReport, error) {
	return m.progress(ctx, userID, tripID)
}

func (m *mockItineraryAPI) TravelDays(ctx context.Context, userID, tripID uuid.UUID) ([]planner.TravelDay, error) {
	return m.travelDays(ctx, userID, tripID)
}

type mockShareAPI struct {
	create     func(ctx context.Context, userID, tripID uuid.UUID, canCopy bool) (domain.SharedTrip, error)
	publicView func(ctx context.Context, token string) (service.PublicTrip, error)
	copyTrip   func(ctx context.Context, userID uuid.UUID, token string) (domain.Trip, error)
}

func (m *mockShareAPI) Create(ctx context.Context, userID, tripID uuid.UUID, canCopy bool) (domain.SharedTrip, error) {
	return m.create(ctx, userID, tripID, canCopy)
}

func (m *mockShareAPI) PublicView(ctx context.Context, token string) (service.PublicTrip, error) {
	return m.publicView(ctx, token)
}

func (m *mockShareAPI) Copy(ctx context.Context, userID uuid.UUID, token string) (domain.Trip, error) {
	return m.copyTrip(ctx, userID, token)
}

type mockSettingsAPI struct {
	get func(ctx context.Context, userID, tripID uuid.UUID) (domain.TripSettings, error)
	put func(ctx context.Context, userID uuid.UUID, settings domain.TripSettings) (domain.TripSettings, error)
}

func (m *mockSettingsAPI) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.TripSettings, error) {
	return m.get(ctx, userID, tripID)
}

func (m *mockSettingsAPI) Put(ctx context.Context, userID uuid.UUID, settings domain.TripSettings) (domain.TripSettings, error) {
	return m.put(ctx, userID, settings)
}

type mockParkingAPI struct {
	listSlots func(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.ParkingSlot, error)
	book      func(ctx context.Context, userID uuid.UUID, booking domain.ParkingBooking) (domain.ParkingBooking, error)
	cancel    func(ctx context.Context, userID, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error)
}

func (m *mockParkingAPI) ListSlots(ctx context.Context, userID, tripID, stopID uuid.UUID) ([]domain.ParkingSlot, error) {
	return m.listSlots(ctx, userID, tripID, stopID)
}

func (m *mockParkingAPI) Book(ctx context.Context, userID uuid.UUID, booking domain.ParkingBooking) (domain.ParkingBooking, error) {
	return m.book(ctx, userID, booking)
}

func (m *mockParkingAPI) Cancel(ctx context.Context, userID, tripID, bookingID uuid.UUID) (domain.ParkingBooking, error) {
	return m.cancel(ctx, userID, tripID, bookingID)
}

type mockAdminAPI struct {
	platformStats       func(ctx context.Context) (domain.PlatformStats, error)
	popularDestinations func(ctx context.Context, limit int) ([]domain.DestinationCount, error)
	topUsers            func(ctx context.Context, limit int) ([]domain.UserTripCount, error)
	activityAnalytics   func(ctx context.Context) ([]domain.CategoryCount, error)
}

func (m *mockAdminAPI) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	return m.platformStats(ctx)
}

func (m *mockAdminAPI) PopularDestinations(ctx context.Context, limit int) ([]domain.DestinationCount, error) {
	return m.popularDestinations(ctx, limit)
}

func (m *mockAdminAPI) TopUsers(ctx context.Context, limit int) ([]domain.UserTripCount, error) {
	return m.topUsers(ctx, limit)
}

func (m *mockAdminAPI) ActivityAnalytics(ctx context.Context) ([]domain.CategoryCount, error) {
	return m.activityAnalytics(ctx)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.UserAPI      = (*mockUserAPI)(nil)
	_ handler.TripAPI      = (*mockTripAPI)(nil)
	_ handler.StopAPI      = (*mockStopAPI)(nil)
	_ handler.ActivityAPI  = (*mockActivityAPI)(nil)
	_ handler.BudgetAPI    = (*mockBudgetAPI)(nil)
	_ handler.ItineraryAPI = (*mockItineraryAPI)(nil)
	_ handler.ShareAPI     = (*mockShareAPI)(nil)
	_ handler.SettingsAPI  = (*mockSettingsAPI)(nil)
	_ handler.ParkingAPI   = (*mockParkingAPI)(nil)
	_ handler.AdminAPI     = (*mockAdminAPI)(nil)
)

// ---- router helpers --------------------------------------------------------

const testBaseURL = "https://globetrotter.example.com"

// apiSet bundles the service doubles a test cares about; unused fields
// stay nil and panic loudly if a test reaches a route it did not stub.
type apiSet struct {
	users       handler.UserAPI
	trips       handler.TripAPI
	stops       handler.StopAPI
	activities  handler.ActivityAPI
	budgets     handler.BudgetAPI
	itineraries handler.ItineraryAPI
	shares      handler.ShareAPI
	settings    handler.SettingsAPI
	parking     handler.ParkingAPI
	admin       handler.AdminAPI
}

// newTestRouter builds the full router around the given doubles. The
// authenticator is replaced with a stub that injects user into the request
// context, or rejects with 401 when user is nil. RequireAdmin is the real
// middleware so admin-route tests exercise the actual gate.
func newTestRouter(apis apiSet, user *domain.User) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHandlers(
		apis.users,
		apis.trips,
		apis.stops,
		apis.activities,
		apis.budgets,
		apis.itineraries,
		apis.shares,
		apis.settings,
		apis.parking,
		apis.admin,
		testBaseURL,
		log,
	)

	authenticate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), *user)))
		})
	}

	return handler.NewRouter(h, handler.RouterDeps{
		Authenticate: authenticate,
		RequireAdmin: middleware.RequireAdmin,
		CORSOrigins:  []string{"*"},
	})
}

func travellerFixture() domain.User {
	return domain.User{
		ID:    uuid.MustParse("7d3f1e22-0000-0000-0000-000000000001"),
		Email: "priya@example.com",
	}
}

func adminFixture() domain.User {
	u := travellerFixture()
	u.ID = uuid.MustParse("7d3f1e22-0000-0000-0000-000000000002")
	u.Email = "admin@example.com"
	u.IsAdmin = true
	return u
}
