package api

import (
	"parts-analyzer/docs"
	"parts-analyzer/internal/api/handlers"
	"parts-analyzer/pkg/auth"
	"parts-analyzer/pkg/config"
	"parts-analyzer/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const ReportsPrefix = "/reports"

func SetupRouter(
	searchHandler *handlers.SearchHandler,
	historyHandler *handlers.HistoryHandler,
	supplierHandler *handlers.SupplierHandler,
	jwtManager *auth.JWTManager,
	serverCfg *config.ServerConfig,
	reportsDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	}))
	app.Use(middleware.RequestID(appLogger))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	appLogger.Info("Serving reports", zap.String("path", reportsDir))
	app.Static(ReportsPrefix, reportsDir, fiber.Static{Download: true})

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))
	protected.Post("/search", searchHandler.Search)
	protected.Get("/history/:part_number", historyHandler.GetHistory)
	protected.Get("/suppliers", supplierHandler.ListSuppliers)

	return app
}
