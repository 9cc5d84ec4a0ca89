package handler

import (
	"net/http"
)

// CreateStop handles POST /api/v1/trips/{tripID}/stops.
func (h *Handlers) CreateStop(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}
	var payload stopPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	stop, err := h.stops.Create(r.Context(), user.ID, payload.toDomain(tripID))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toStopResponse(stop))
}

// ListStops handles GET /api/v1/trips/{tripID}/stops.
func (h *Handlers) ListStops(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	stops, err := h.stops.List(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	items := make([]stopResponse, 0, len(stops))
	for _, s := range stops {
		items = append(items, toStopResponse(s))
	}
	writeJSON(w, http.StatusOK, items)
}

// GetStop handles GET /api/v1/trips/{tripID}/stops/{stopID}.
func (h *Handlers) GetStop(w http.ResponseWriter, r *http.Request) {
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

	stop, err := h.stops.Get(r.Context(), user.ID, tripID, stopID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStopResponse(stop))
}

// UpdateStop handles PUT /api/v1/trips/{tripID}/stops/{stopID}.
func (h *Handlers) UpdateStop(w http.ResponseWriter, r *http.Request) {
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
	var payload stopPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	stop := payload.toDomain(tripID)
	stop.ID = stopID
	updated, err := h.stops.Update(r.Context(), user.ID, stop)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStopResponse(updated))
}

// DeleteStop handles DELETE /api/v1/trips/{tripID}/stops/{stopID}.
func (h *Handlers) DeleteStop(w http.ResponseWriter, r *http.Request) {
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

	if err := h.stops.Delete(r.Context(), user.ID, tripID, stopID); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
