package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ghuser/catalog/migrations"
	"github.com/ghuser/catalog/pkg/config"
	"github.com/ghuser/catalog/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	applied, err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, migrations.Catalog())
	if err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "versions", applied)
}
