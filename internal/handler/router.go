package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/middleware"
)

// maxBodyBytes caps request bodies at 1 MiB; no endpoint accepts
// anything close to that.
const maxBodyBytes = 1 << 20

// RouterDeps carries the cross-cutting pieces the router needs beyond the
// handlers themselves. Authenticate and RequireAdmin are injected so tests
// can substitute a stub that places a known user on the context.
type RouterDeps struct {
	Authenticate func(http.Handler) http.Handler
	RequireAdmin func(http.Handler) http.Handler
	CORSOrigins  []string
	Health       http.HandlerFunc
}

// NewRouter builds the Chi router with all routes configured.
// Health, signup, login and the public share view are unauthenticated;
// everything else requires a bearer token, and the admin group additionally
// requires the admin flag. Rate limiting is applied globally: 60 requests
// per minute per IP.
func NewRouter(h *Handlers, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewSlogLogger(h.log))
	r.Use(middleware.NewCORSHandler(deps.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))
	r.Use(httprate.LimitByIP(60, time.Minute))

	if deps.Health != nil {
		r.Get("/api/v1/health", deps.Health)
	}

	r.Post("/api/v1/auth/signup", h.Signup)
	r.Post("/api/v1/auth/login", h.Login)
	r.Get("/api/v1/share/{token}", h.GetSharedTrip)

	r.Group(func(r chi.Router) {
		r.Use(deps.Authenticate)

		r.Route("/api/v1/trips", func(r chi.Router) {
			r.Post("/", h.CreateTrip)
			r.Get("/", h.ListTrips)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", h.GetTrip)
				r.Put("/", h.UpdateTrip)
				r.Delete("/", h.DeleteTrip)

				r.Get("/itinerary", h.GetItinerary)
				r.Get("/progress", h.GetProgress)
				r.Get("/travel-days", h.GetTravelDays)

				r.Post("/share", h.CreateShare)

				r.Get("/settings", h.GetSettings)
				r.Put("/settings", h.PutSettings)

				r.Route("/stops", func(r chi.Router) {
					r.Post("/", h.CreateStop)
					r.Get("/", h.ListStops)

					r.Route("/{stopID}", func(r chi.Router) {
						r.Get("/", h.GetStop)
						r.Put("/", h.UpdateStop)
						r.Delete("/", h.DeleteStop)

						r.Post("/activities", h.CreateActivity)
						r.Get("/activities", h.ListActivities)
						r.Delete("/activities/{activityID}", h.DeleteActivity)

						r.Get("/parking", h.ListParkingSlots)
					})
				})

				r.Route("/budget", func(r chi.Router) {
					r.Get("/", h.GetBudgetSummary)
					r.Post("/records", h.CreateBudgetRecord)
					r.Get("/records", h.ListBudgetRecords)
					r.Delete("/records/{recordID}", h.DeleteBudgetRecord)
				})

				r.Route("/parking/bookings", func(r chi.Router) {
					r.Post("/", h.CreateParkingBooking)
					r.Post("/{bookingID}/cancel", h.CancelParkingBooking)
				})
			})
		})

		r.Post("/api/v1/share/{token}/copy", h.CopySharedTrip)

		r.Route("/api/v1/admin", func(r chi.Router) {
			r.Use(deps.RequireAdmin)
			r.Get("/stats", h.GetPlatformStats)
			r.Get("/stats/destinations", h.GetPopularDestinations)
			r.Get("/stats/users", h.GetTopUsers)
			r.Get("/stats/activities", h.GetActivityAnalytics)
		})
	})

	return r
}
