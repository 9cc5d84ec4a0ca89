package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type sharePayload struct {
	CanCopy bool `json:"can_copy"`
}

type shareResponse struct {
	Token    string `json:"token"`
	ShareURL string `json:"share_url"`
	CanCopy  bool   `json:"can_copy"`
}

// CreateShare handles POST /api/v1/trips/{tripID}/share.
// Sharing is idempotent: a second call returns the existing link.
func (h *Handlers) CreateShare(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid trip id")
		return
	}
	var payload sharePayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	share, err := h.shares.Create(r.Context(), user.ID, tripID, payload.CanCopy)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shareResponse{
		Token:    share.Token,
		ShareURL: h.publicBaseURL + "/api/v1/share/" + share.Token,
		CanCopy:  share.CanCopy,
	})
}

// GetSharedTrip handles GET /api/v1/share/{token}. It is the only trip
// read reachable without authentication.
func (h *Handlers) GetSharedTrip(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "missing share token")
		return
	}

	view, err := h.shares.PublicView(r.Context(), token)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CopySharedTrip handles POST /api/v1/share/{token}/copy.
func (h *Handlers) CopySharedTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	token := chi.URLParam(r, "token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "missing share token")
		return
	}

	trip, err := h.shares.Copy(r.Context(), user.ID, token)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripResponse(trip))
}
