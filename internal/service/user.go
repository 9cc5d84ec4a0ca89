package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/auth"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/domain"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
)

const minPasswordLen = 8

// UserService implements signup and login.
type UserService struct {
	users  repo.UserRepo
	tokens *auth.TokenManager
}

// NewUserService constructs a UserService.
func NewUserService(users repo.UserRepo, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Session is the result of a successful signup or login.
type Session struct {
	User  domain.User
	Token string
}

// Signup registers a new account and returns a signed session token.
// Returns domain.ErrValidation for a malformed email, a short password,
// or an email that is already registered.
func (s *UserService) Signup(ctx context.Context, email, password, firstName, lastName string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return Session{}, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return Session{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("service.UserService.Signup: %w", err)
	}
	user, err := s.users.Create(ctx, domain.User{
		Email:          email,
		HashedPassword: hashed,
		FirstName:      strings.TrimSpace(firstName),
		LastName:       strings.TrimSpace(lastName),
	})
	if err != nil {
		return Session{}, fmt.Errorf("service.UserService.Signup: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("service.UserService.Signup: %w", err)
	}
	return Session{User: user, Token: token}, nil
}

// ErrBadCredentials is returned by Login for a wrong email or password.
// Handlers map it to 401; it deliberately does not say which was wrong.
var ErrBadCredentials = errors.New("invalid email or password")

// Login verifies credentials and returns a signed session token.
func (s *UserService) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Session{}, ErrBadCredentials
		}
		return Session{}, fmt.Errorf("service.UserService.Login: %w", err)
	}
	if !auth.CheckPassword(password, user.HashedPassword) {
		return Session{}, ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("service.UserService.Login: %w", err)
	}
	return Session{User: user, Token: token}, nil
}
