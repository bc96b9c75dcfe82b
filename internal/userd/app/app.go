package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/sablevale/userd/internal/userd/http"
	"github.com/sablevale/userd/internal/userd/service"
	"github.com/sablevale/userd/internal/userd/store"
	"github.com/sablevale/userd/internal/userd/store/drivers/sqlite"
	"github.com/sablevale/userd/pkg/slogx"
	"github.com/sablevale/userd/pkg/tokenx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the directory service with all its
// dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	codec tokenx.Codec

	loginService        *service.LoginService
	registrationService *service.RegistrationService
	accountService      *service.AccountService
	bootstrapService    *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. A
// missing token secret or an unreachable store is fatal here; the
// process must not come up half-wired.
func New(cfg Config) (*Application, error) {
	if cfg.TokenSecret == "" {
		return nil, errors.New("USERD_TOKEN_SECRET is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "userd",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		codec: tokenx.Codec{
			Secret: []byte(cfg.TokenSecret),
			TTL:    cfg.TokenTTL,
		},
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("userd starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down userd...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("userd stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.loginService = &service.LoginService{
		Store: app.db,
		Codec: app.codec,
	}
	app.registrationService = &service.RegistrationService{
		Store: app.db,
		Codec: app.codec,
	}
	app.accountService = &service.AccountService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Admin: service.SuperAdmin{
			Email:     app.cfg.AdminEmail,
			Username:  app.cfg.AdminUsername,
			FirstName: app.cfg.AdminFirstName,
			LastName:  app.cfg.AdminLastName,
			Password:  app.cfg.AdminPassword,
		},
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.codec, BuildVersion, app.db, app.logger)

	router.LoginService = app.loginService
	router.RegistrationService = app.registrationService
	router.AccountService = app.accountService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
