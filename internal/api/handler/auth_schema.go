package handler

import (
	"time"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName"       validate:"required"`
	LastName        string `json:"lastName"        validate:"required"`
}

type sessionResponse struct {
	State         domain.SessionState `json:"state"`
	Authenticated bool                `json:"authenticated"`
	User          *domain.User        `json:"user,omitempty"`
	// TokenExpiresAt is informational only, read from the token without
	// verification; authorization decisions never depend on it.
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}
