// Package app composes the incident-map core: configuration, logging, the
// in-memory stores, and the two services, built once at process start and
// handed by reference to whatever drives the presentation layer.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sos-cl/incident-map/internal/core/domain"
	"github.com/sos-cl/incident-map/internal/core/ports"
	"github.com/sos-cl/incident-map/internal/core/service"
	"github.com/sos-cl/incident-map/internal/infrastructure/memory"
	"github.com/sos-cl/incident-map/internal/pkg/config"
	"github.com/sos-cl/incident-map/pkg/logger"
)

// App is the explicit state container holding the whole core. All state is
// in-process and lost on restart.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Identity ports.IdentityService
	Reports  ports.ReportService
}

// New loads configuration, initialises logging, and builds the stores with
// the administrator account seeded.
func New(ctx context.Context) (*App, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	a := &App{Config: cfg, Logger: log}
	if err := a.build(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("env", cfg.Env).Msg("incident-map core ready")
	return a, nil
}

// Reset discards every user, report, and the session, then reseeds the
// administrator. Teardown hook for tests.
func (a *App) Reset(ctx context.Context) error {
	return a.build(ctx)
}

func (a *App) build(ctx context.Context) error {
	users := memory.NewUserRepository()
	reports := memory.NewReportRepository()

	admin := &domain.User{
		ID:        uuid.NewString(),
		Email:     a.Config.Admin.Email,
		Name:      a.Config.Admin.Name,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	identity := service.NewIdentityService(users, a.Config.Admin.Password, a.Logger)
	a.Identity = identity
	a.Reports = service.NewReportService(reports, identity, a.Logger)
	return nil
}
