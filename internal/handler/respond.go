package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/middleware"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
)

// errorResponse is the uniform error envelope: {"error":{"code","message"}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// respondErr maps a service error to its HTTP status. Unexpected errors
// are logged with their full chain and reported as an opaque 500.
func (h *Handlers) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, service.ErrBadCredentials):
		writeError(w, http.StatusUnauthorized, "unauthorized", service.ErrBadCredentials.Error())
	case errors.Is(err, domain.ErrDataIntegrity):
		h.log.ErrorContext(r.Context(), "stored data inconsistent", "method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "data_integrity", "stored trip data is inconsistent")
	default:
		h.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: name is
// required" becomes "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrNotLoaded.Error() + ": ",
	} {
		if i := strings.LastIndex(msg, sentinel); i >= 0 {
			return msg[i+len(sentinel):]
		}
	}
	// "service.X.Y: not found: trip <id>" style chains: drop the call prefixes.
	if i := strings.LastIndex(msg, ": "); i >= 0 && strings.Contains(msg, domain.ErrNotFound.Error()) {
		if j := strings.Index(msg, domain.ErrNotFound.Error()); j >= 0 {
			return msg[j:]
		}
	}
	return msg
}

// decode reads the request body as JSON into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// currentUser pulls the authenticated user from the request context. The
// router only reaches these handlers through the authenticator, so a
// missing user is a wiring bug, reported as 500 rather than panicking.
func (h *Handlers) currentUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.log.ErrorContext(r.Context(), "no user in context on authenticated route", "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
	return user, ok
}
