package handler

import (
	"net/http"
	"time"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
)

type settingsPayload struct {
	PackingList []domain.PackingItem `json:"packing_list"`
}

type settingsResponse struct {
	PackingList []domain.PackingItem `json:"packing_list"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// GetSettings handles GET /api/v1/trips/{tripID}/settings.
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}

	settings, err := h.settings.Get(r.Context(), user.ID, tripID)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{
		PackingList: settings.PackingList,
		UpdatedAt:   settings.UpdatedAt,
	})
}

// PutSettings handles PUT /api/v1/trips/{tripID}/settings.
func (h *Handlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}
	var payload settingsPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	settings, err := h.settings.Put(r.Context(), user.ID, domain.TripSettings{
		TripID:      tripID,
		PackingList: payload.PackingList,
	})
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{
		PackingList: settings.PackingList,
		UpdatedAt:   settings.UpdatedAt,
	})
}
