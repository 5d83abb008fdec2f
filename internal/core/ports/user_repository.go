package ports

import (
	"context"

	"github.com/sos-cl/incident-map/internal/core/domain"
)

// UserRepository defines the storage operations of the identity directory.
// Implementations trust the caller to have performed authorization checks.
type UserRepository interface {
	// Create stores a new user. Fails with domain.ErrEmailTaken when the
	// email is already registered (exact, case-sensitive match).
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateRole replaces the stored user's role field only; every other
	// field is left unchanged.
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	// List returns all registered users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
}
