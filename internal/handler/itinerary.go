package handler

import (
	"net/http"
)

// GetItinerary handles GET /api/v1/trips/{tripID}/itinerary?view=city|day.
// The view parameter defaults to "city".
func (h *Handlers) GetItinerary(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	switch view := r.URL.Query().Get("view"); view {
	case "", "city":
		cities, err := h.itineraries.CityView(r.Context(), user.ID, tripID)
		if err != nil {
			h.respondErr(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"view": "city", "stops": cities})
	case "day":
		days, err := h.itineraries.DayView(r.Context(), user.ID, tripID)
		if err != nil {
			h.respondErr(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"view": "day", "days": days})
	default:
		writeError(w, http.StatusBadRequest, "bad_request", "view must be \"city\" or \"day\"")
	}
}

// GetProgress handles GET /api/v1/trips/{tripID}/progress.
func (h *Handlers) GetProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	report, err := h.itineraries.Progress(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GetTravelDays handles GET /api/v1/trips/{tripID}/travel-days.
func (h *Handlers) GetTravelDays(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	legs, err := h.itineraries.TravelDays(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"travel_days": legs})
}
