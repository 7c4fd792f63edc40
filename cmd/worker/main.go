package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ghuser/catalog/pkg/config"
	"github.com/ghuser/catalog/pkg/database"
	"github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/pkg/telemetry"
	categoryEvents "github.com/ghuser/catalog/services/category/domain/events"
	itemEvents "github.com/ghuser/catalog/services/item/domain/events"
)

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
		log.Error("worker exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return errors.New("the worker reads the Postgres outbox and needs STORE_DRIVER=postgres")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	log.Info("database pool connected")

	bus, err := events.NewBus(db.DB().DB, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("setup event bus: %w", err)
	}
	// Close waits up to 30s for in-flight handlers.
	defer bus.Close() //nolint:errcheck

	if err := subscribe(ctx, bus, subscriptions(log), log); err != nil {
		return err
	}
	log.Info("worker stopped")
	return nil
}

// subscriptions maps every published topic to its handler.
// Add new topics here as more services publish events.
func subscriptions(log logger.Logger) map[string]events.Handler {
	subs := map[string]events.Handler{
		categoryEvents.TopicCategoryCreated: auditCategoryCreated(log),
	}
	for _, topic := range itemEvents.Topics {
		subs[topic] = auditItem(log, topic)
	}
	return subs
}

// subscribe registers every handler and blocks until ctx is cancelled and
// all subscriptions have drained.
func subscribe(ctx context.Context, bus *events.Bus, subs map[string]events.Handler, log logger.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	topics := make([]string, 0, len(subs))
	for topic, handler := range subs {
		errCh, err := bus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		g.Go(func() error {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
			return nil
		})
	}
	log.Info("event subscribers registered", "topics", topics)
	return g.Wait()
}
