package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sos-cl/incident-map/internal/core/domain"
	"github.com/sos-cl/incident-map/internal/core/policy"
	"github.com/sos-cl/incident-map/internal/core/ports"
	"github.com/sos-cl/incident-map/internal/metrics"
	"github.com/sos-cl/incident-map/internal/validation"
)

// IdentityService implements registration, login, and role management over
// the identity directory, and owns the single in-process session.
type IdentityService struct {
	repo          ports.UserRepository
	adminPassword string
	logger        zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
}

// NewIdentityService wires the identity directory. adminPassword is the
// fixed credential of the seeded administrator, the only account whose
// password is ever verified.
func NewIdentityService(repo ports.UserRepository, adminPassword string, logger zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, adminPassword: adminPassword, logger: logger}
}

// Register creates a new USER account and authenticates it.
func (s *IdentityService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.setSession(user)
	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing account and sets the session. Only the
// seeded administrator has a password on file; everyone else authenticates
// by email alone.
func (s *IdentityService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
		return nil, err
	}

	if user.Role == domain.RoleAdmin && input.Password != s.adminPassword {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		s.logger.Warn().Str("user_id", user.ID).Msg("admin login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.setSession(user)
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return user, nil
}

// Logout clears the session unconditionally.
func (s *IdentityService) Logout(_ context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.logger.Debug().Msg("session cleared")
}

// Current returns a snapshot of the authenticated user, or nil when the
// session is anonymous.
func (s *IdentityService) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// ListUsers returns every registered user in insertion order. Restricted to
// administrators.
func (s *IdentityService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if !policy.AllowedUser(s.Current(), policy.OpListUsers) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

// SetUserRole changes a non-admin user's role to USER or MODERATOR.
func (s *IdentityService) SetUserRole(ctx context.Context, userID string, role domain.Role) error {
	actor := s.Current()
	if !policy.AllowedUser(actor, policy.OpManageRoles) {
		return domain.ErrForbidden
	}
	if role != domain.RoleUser && role != domain.RoleModerator {
		return validation.NewFieldError("role", "role must be USER or MODERATOR")
	}

	target, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	// Role changes never target an ADMIN account.
	if target.Role == domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.logger.Info().
		Str("actor_id", actor.ID).
		Str("user_id", userID).
		Str("role", string(role)).
		Msg("user role updated")
	return nil
}

func (s *IdentityService) setSession(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.current = &clone
}
