package main

import (
	"context"
	"errors"
	"log"
	"os"

	"parts-analyzer/internal/models"
	"parts-analyzer/internal/repository"
	"parts-analyzer/pkg/config"
	"parts-analyzer/pkg/logger"
	"parts-analyzer/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Usage: migrate [up|down]. "up" also seeds the suppliers table.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	m, err := migrate.New(cfg.Database.MigrationsPath, postgres.URL(&cfg.Database))
	if err != nil {
		appLogger.Fatal("Cannot create migrate instance", zap.Error(err))
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		appLogger.Fatal("Unknown direction, expected up or down", zap.String("direction", direction))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		appLogger.Fatal("Migration failed", zap.String("direction", direction), zap.Error(err))
	}
	appLogger.Info("Database migrated", zap.String("direction", direction))

	if direction != "up" {
		return
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.NewSupplierRepository(db, appLogger).Seed(ctx, models.DefaultSupplierRegistry()); err != nil {
		appLogger.Fatal("Failed to seed suppliers", zap.Error(err))
	}
}
