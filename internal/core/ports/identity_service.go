package ports

import (
	"context"

	"github.com/sos-cl/incident-map/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string `validate:"required,min=3"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SessionReader exposes the current authentication context. A nil user
// means the session is anonymous.
type SessionReader interface {
	Current() *domain.User
}

// IdentityService defines use-case operations over the identity directory
// and the single in-process session.
type IdentityService interface {
	SessionReader

	// Register creates a USER account and authenticates it.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates an existing account. Only the seeded
	// administrator has a password on file.
	Login(ctx context.Context, input LoginInput) (*domain.User, error)
	// Logout clears the session unconditionally.
	Logout(ctx context.Context)
	// ListUsers returns every registered user in insertion order.
	// Restricted to administrators.
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// SetUserRole changes a non-admin user's role to USER or MODERATOR.
	// Restricted to administrators; never targets an ADMIN account.
	SetUserRole(ctx context.Context, userID string, role domain.Role) error
}
