package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/sso/internal/sso/http"
	"github.com/aussiebroadwan/sso/internal/sso/service"
	"github.com/aussiebroadwan/sso/internal/sso/store"
	"github.com/aussiebroadwan/sso/internal/sso/store/drivers/sqlite"
	"github.com/aussiebroadwan/sso/pkg/slogx"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

// BuildVersion is overridden at build time:
//
//	go build -ldflags "-X github.com/aussiebroadwan/sso/internal/sso/app.BuildVersion=v1.2.3"
var BuildVersion = "v0.1.0"

// Application encapsulates the SSO service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db  store.Store
	sso *ssox.Client

	// Services
	activityService     *service.ActivityService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "sso-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	client, err := ssox.NewClient(ssox.Config{
		ClientID:            cfg.ClientID,
		ClientSecret:        cfg.ClientSecret,
		Environment:         ssox.Environment(cfg.SSOEnvironment),
		Realm:               cfg.SSORealm,
		Protocol:            ssox.Protocol(cfg.SSOProtocol),
		BaseURL:             cfg.SSOBaseURL,
		SiteMinderLogoutURL: cfg.SSOSiteMinderLogout,
		TokenValidation:     ssox.ValidationMode(cfg.SSOTokenValidation),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sso client: %w", err)
	}
	app.sso = client

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("sso service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"sso_environment", app.sso.Environment(),
		"sso_realm", app.sso.Realm(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			app.housekeepingService.Stop()
			_ = app.db.Close()
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down sso service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("sso service stopped")
	return nil
}

// Handler exposes the HTTP handler, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// initDatabase opens the activity database and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
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
	app.activityService = &service.ActivityService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.ActivityRetention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		httpapi.RouteConfig{
			FrontendURL:  app.cfg.FrontendURL,
			BackendURL:   app.cfg.BackendURL,
			CookieDomain: app.cfg.CookieDomain,
		},
		app.sso,
		app.sso,
		app.cfg.AdminRoles,
		app.db,
		BuildVersion,
		app.logger,
	)
	router.ActivityService = app.activityService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
