package handler

import (
	"net/http"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

// CreateTrip handles POST /api/v1/trips.
func (h *Handlers) CreateTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var payload tripPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	trip, err := h.trips.Create(r.Context(), user.ID, payload.toDomain())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripResponse(trip))
}

// ListTrips handles GET /api/v1/trips?page=N&limit=M.
func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	p := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := h.trips.List(r.Context(), user.ID, p)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	items := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		items = append(items, toTripResponse(t))
	}
	writeJSON(w, http.StatusOK, pageResponse[tripResponse]{
		Items: items,
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
	})
}

// GetTrip handles GET /api/v1/trips/{tripID}.
func (h *Handlers) GetTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	trip, err := h.trips.Get(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(trip))
}

// UpdateTrip handles PUT /api/v1/trips/{tripID}.
func (h *Handlers) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}
	var payload tripPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	trip := payload.toDomain()
	trip.ID = tripID
	updated, err := h.trips.Update(r.Context(), user.ID, trip)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(updated))
}

// DeleteTrip handles DELETE /api/v1/trips/{tripID}.
func (h *Handlers) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	if err := h.trips.Delete(r.Context(), user.ID, tripID); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
