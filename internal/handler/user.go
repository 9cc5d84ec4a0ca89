package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

type signupPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Signup handles POST /api/v1/auth/signup.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var payload signupPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	session, err := h.users.Signup(r.Context(), payload.Email, payload.Password, payload.FirstName, payload.LastName)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		Token: session.Token,
		User: userResponse{
			ID:        session.User.ID,
			Email:     session.User.Email,
			FirstName: session.User.FirstName,
			LastName:  session.User.LastName,
			IsAdmin:   session.User.IsAdmin,
			CreatedAt: session.User.CreatedAt,
		},
	})
}

// Login handles POST /api/v1/auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := decode(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	session, err := h.users.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Token: session.Token,
		User: userResponse{
			ID:        session.User.ID,
			Email:     session.User.Email,
			FirstName: session.User.FirstName,
			LastName:  session.User.LastName,
			IsAdmin:   session.User.IsAdmin,
			CreatedAt: session.User.CreatedAt,
		},
	})
}
