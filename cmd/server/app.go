package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/marchenry/bookworm-api/internal/config"
	"github.com/marchenry/bookworm-api/internal/events"
	"github.com/marchenry/bookworm-api/internal/platform/memory"
	"github.com/marchenry/bookworm-api/internal/platform/postgres"
	"github.com/marchenry/bookworm-api/internal/service"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/marchenry/bookworm-api/internal/store"
)

// application holds the wired dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory backend is configured.
	db *sql.DB

	accountStore   store.AccountStore
	profileStore   store.ProfileStore
	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	profileService service.ProfileService
	eventEmitter   events.EventEmitter
}

// newApplication wires stores, services, and event handling from the loaded
// configuration. The database backend selects between the in-memory stores
// and the PostgreSQL stores; migrations run automatically for the latter.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:         cfg,
		logger:         logger,
		passwordHasher: auth.NewBcryptHasher(0),
	}

	switch cfg.Database.Backend {
	case "postgres":
		db, err := setupAppDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(db); err != nil {
			closeDatabase(db, logger)
			return nil, err
		}
		app.db = db
		app.accountStore = postgres.NewAccountStore(db, app.passwordHasher)
		app.profileStore = postgres.NewProfileStore(db)
	case "memory":
		app.accountStore = memory.NewAccountStore(app.passwordHasher)
		app.profileStore = memory.NewProfileStore()
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Database.Backend)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLoggingHandler(logger))
	app.eventEmitter = emitter

	profileService, err := service.NewProfileService(app.profileStore, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}
	app.profileService = profileService

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
		app.db = nil
	}
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", "error", err)
	}
}
