package main

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

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/catalog/docs/swagger"
	"github.com/ghuser/catalog/migrations"
	"github.com/ghuser/catalog/pkg/app"
	"github.com/ghuser/catalog/pkg/auth"
	"github.com/ghuser/catalog/pkg/config"
	"github.com/ghuser/catalog/pkg/database"
	"github.com/ghuser/catalog/pkg/errhttp"
	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/httpx"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/pkg/migrator"
	"github.com/ghuser/catalog/pkg/redisx"
	"github.com/ghuser/catalog/pkg/telemetry"
	categoryApi "github.com/ghuser/catalog/services/category/application/api"
	categoryEvents "github.com/ghuser/catalog/services/category/domain/events"
	itemApi "github.com/ghuser/catalog/services/item/application/api"
	itemEvents "github.com/ghuser/catalog/services/item/domain/events"
)

const shutdownTimeout = 30 * time.Second

// @title						Catalog API
// @version					1.0
// @description				Categories and owner-scoped items.
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @host						localhost:9000
// @BasePath					/
// @schemes					http https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("api exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx := context.Background()

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return fmt.Errorf("setup metrics: %w", err)
	}

	a := &app.Application{
		Logger:  log,
		Metrics: metrics,
		Errors: errhttp.NewWriter(errhttp.Options{
			LegacyConflictStatus: cfg.LegacyConflictStatus,
			HideInternalErrors:   cfg.IsProduction(),
			Log:                  log,
		}),
	}

	if cfg.StoreDriver == config.StoreDriverPostgres {
		closeStore, err := openStore(ctx, cfg, a)
		if err != nil {
			return err
		}
		defer closeStore()
	} else {
		log.Warn("using in-memory store, records are lost on restart")
	}

	if err := setupAuth(ctx, cfg, a); err != nil {
		return err
	}
	if a.Redis != nil {
		defer a.Redis.Close() //nolint:errcheck
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpx.Message(w, http.StatusOK, "Welcome to the catalog API")
	})
	r.Get("/health", httpx.HealthHandler(healthChecks(a)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	if !cfg.IsProduction() {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
	registerRoutes(r, a)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver, "auth", cfg.AuthMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// openStore connects Postgres, applies pending migrations and starts the
// outbox bus. The returned func releases both.
func openStore(ctx context.Context, cfg *config.Config, a *app.Application) (func(), error) {
	db, err := database.NewPool(ctx, cfg.DatabaseURL, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a.Logger.Info("database pool connected")

	applied, err := migrator.Up(ctx, db.DB().DB, migrations.Catalog())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	a.Logger.Info("migrations applied", "versions", applied)

	bus, err := events.NewBus(db.DB().DB, cfg.ServiceName, a.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setup event bus: %w", err)
	}
	topics := append([]string{categoryEvents.TopicCategoryCreated}, itemEvents.Topics...)
	if err := bus.InitTopics(topics...); err != nil {
		bus.Close() //nolint:errcheck
		db.Close()
		return nil, fmt.Errorf("init event topics: %w", err)
	}

	a.Db = db
	a.Events = bus
	return func() {
		bus.Close() //nolint:errcheck
		db.Close()
	}, nil
}

// setupAuth picks the credential mechanism for owner-scoped routes.
func setupAuth(ctx context.Context, cfg *config.Config, a *app.Application) error {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		a.Authenticate = auth.Authenticate(auth.NewJWTResolver([]byte(cfg.JWTSecret)), a.Logger)
	case config.AuthModeRemote:
		a.Authenticate = auth.Authenticate(auth.NewRemoteResolver(cfg.UserServiceURL, cfg.UserServiceTimeout), a.Logger)
	case config.AuthModeSession:
		rc, err := redisx.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		a.Redis = rc
		a.SessionStore = auth.NewSessionStore(
			rc.Redis(),
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			auth.SessionOptions{Secure: cfg.IsProduction()},
		)
		a.Authenticate = auth.RequireSession(a.SessionStore, a.Logger)
	default:
		return fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
	a.Logger.Info("authentication configured", "mode", cfg.AuthMode)
	return nil
}

// healthChecks registers only the dependencies this process actually opened.
func healthChecks(a *app.Application) httpx.HealthChecks {
	checks := httpx.HealthChecks{}
	if a.Db != nil {
		checks["database"] = a.Db
	}
	if a.Events != nil {
		checks["event_bus"] = a.Events
	}
	if a.Redis != nil {
		checks["redis"] = a.Redis
	}
	return checks
}

// registerRoutes mounts all service routes.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	categoryApi.CategoryRoutes(r, a)
	itemApi.ItemRoutes(r, a)
}
