package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"parts-analyzer/internal/api"
	"parts-analyzer/internal/api/handlers"
	"parts-analyzer/internal/models"
	"parts-analyzer/internal/repository"
	"parts-analyzer/internal/service"
	"parts-analyzer/pkg/auth"
	"parts-analyzer/pkg/cache"
	"parts-analyzer/pkg/config"
	"parts-analyzer/pkg/logger"
	"parts-analyzer/pkg/postgres"

	"go.uber.org/zap"
)

// @title Industrial Parts Analyzer API
// @version 1.0
// @description Поиск и анализ цен на промышленные запчасти у нескольких поставщиков

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting industrial parts analyzer")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rdb, err := cache.NewRedis(ctx, cfg.Redis.URL, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Initialize repositories
	historyRepo := repository.NewPriceHistoryRepository(db, appLogger)
	partRepo := repository.NewPartRepository(db, historyRepo, appLogger)
	searchRequestRepo := repository.NewSearchRequestRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	registry := models.DefaultSupplierRegistry()
	catalog := service.DefaultCatalog()
	gateways := service.NewGatewaySet(registry, catalog,
		service.WithRateLimit(cfg.Search.SupplierRPS, cfg.Search.SupplierBurst),
		service.WithCache(rdb, cfg.Redis.QuoteTTL, appLogger),
		service.WithInstrumentation,
	)
	orchestrator := service.NewSearchOrchestrator(catalog, gateways, partRepo, cfg.Search.Workers, appLogger)

	summaryService, err := service.NewSummaryService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize summary service", zap.Error(err))
	}
	defer summaryService.Close()

	reportService := service.NewReportService(cfg.Report.Dir, appLogger)
	analyzerService := service.NewAnalyzerService(
		registry,
		service.NewParameterExtractor(registry),
		orchestrator,
		service.NewAggregationEngine(registry),
		summaryService,
		reportService,
		searchRequestRepo,
		appLogger,
	)
	historyService := service.NewHistoryService(historyRepo, cfg.Search.HistoryWindowDays, appLogger)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(analyzerService, registry, api.ReportsPrefix, appLogger)
	historyHandler := handlers.NewHistoryHandler(historyService, appLogger)
	supplierHandler := handlers.NewSupplierHandler(registry)

	// Setup router
	app := api.SetupRouter(searchHandler, historyHandler, supplierHandler, jwtManager, &cfg.Server, reportService.Dir(), appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
