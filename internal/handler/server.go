// Package handler implements the HTTP layer of the GlobeTrotter API:
// request decoding, response encoding, and the error-to-status mapping.
// All business rules live in the service layer.
package handler

import (
	"log/slog"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	users       UserAPI
	trips       TripAPI
	stops       StopAPI
	activities  ActivityAPI
	budgets     BudgetAPI
	itineraries ItineraryAPI
	shares      ShareAPI
	settings    SettingsAPI
	parking     ParkingAPI
	admin       AdminAPI

	// publicBaseURL is prepended to share tokens to build share links.
	publicBaseURL string
	log           *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(
	users UserAPI,
	trips TripAPI,
	stops StopAPI,
	activities ActivityAPI,
	budgets BudgetAPI,
	itineraries ItineraryAPI,
	shares ShareAPI,
	settings SettingsAPI,
	parking ParkingAPI,
	admin AdminAPI,
	publicBaseURL string,
	log *slog.Logger,
) *Handlers {
	return &Handlers{
		users:         users,
		trips:         trips,
		stops:         stops,
		activities:    activities,
		budgets:       budgets,
		itineraries:   itineraries,
		shares:        shares,
		settings:      settings,
		parking:       parking,
		admin:         admin,
		publicBaseURL: publicBaseURL,
		log:           log,
	}
}
