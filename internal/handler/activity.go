package handler

import (
	"net/http"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/planner"
)

// activityCreatedResponse pairs the stored activity with the advisory
// budget verdict so the client can warn about an approaching limit.
type activityCreatedResponse struct {
	Activity activityResponse      `json:"activity"`
	Budget   planner.BudgetVerdict `json:"budget"`
}

// CreateActivity handles POST /api/v1/trips/{tripID}/stops/{stopID}/activities.
func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
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
	var payload activityPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	activity, verdict, err := h.activities.Create(r.Context(), user.ID, tripID, payload.toDomain(stopID))
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, activityCreatedResponse{
		Activity: toActivityResponse(activity),
		Budget:   verdict,
	})
}

// ListActivities handles GET /api/v1/trips/{tripID}/stops/{stopID}/activities.
func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
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

	activities, err := h.activities.ListByStop(r.Context(), user.ID, tripID, stopID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	items := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, toActivityResponse(a))
	}
	writeJSON(w, http.StatusOK, items)
}

// DeleteActivity handles DELETE /api/v1/trips/{tripID}/stops/{stopID}/activities/{activityID}.
func (h *Handlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok1 := pathUUID(r, "tripID")
	stopID, ok2 := pathUUID(r, "stopID")
	activityID, ok3 := pathUUID(r, "activityID")
	if !ok1 || !ok2 || !ok3 {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid id in path")
		return
	}

	if err := h.activities.Delete(r.Context(), user.ID, tripID, stopID, activityID); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
