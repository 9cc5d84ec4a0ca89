package handler

import (
	"net/http"
)

// GetPlatformStats handles GET /api/v1/admin/stats.
func (h *Handlers) GetPlatformStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.PlatformStats(r.Context())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetPopularDestinations handles GET /api/v1/admin/stats/destinations?limit=N.
func (h *Handlers) GetPopularDestinations(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if n := queryInt(r, "limit"); n != nil {
		limit = *n
	}
	rows, err := h.admin.PopularDestinations(r.Context(), limit)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"destinations": rows})
}

// GetTopUsers handles GET /api/v1/admin/stats/users?limit=N.
func (h *Handlers) GetTopUsers(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if n := queryInt(r, "limit"); n != nil {
		limit = *n
	}
	rows, err := h.admin.TopUsers(r.Context(), limit)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": rows})
}

// GetActivityAnalytics handles GET /api/v1/admin/stats/activities.
func (h *Handlers) GetActivityAnalytics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.admin.ActivityAnalytics(r.Context())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": rows})
}
