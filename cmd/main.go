package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"graphsense-dashboard/config"
	"graphsense-dashboard/pkg/logger"
	"graphsense-dashboard/pkg/mongodb"
	"graphsense-dashboard/pkg/storage"
	"graphsense-dashboard/services/explorer"
	"graphsense-dashboard/services/health"
	"graphsense-dashboard/services/migration"
	"graphsense-dashboard/services/usertags"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	newLogger, err := logger.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("can't create logger: %v", err)
	}

	zapLogger, err := newLogger.SetupZapLogger()
	if err != nil {
		log.Fatalf("can't setup zap logger: %v", err)
	}
	defer func(zapLogger *zap.SugaredLogger) {
		err := zapLogger.Sync()
		if err != nil && !errors.Is(err, syscall.ENOTTY) {
			log.Fatalf("can't setup zap logger: %v", err)
		}
	}(zapLogger)

	// Metrics
	registry := prometheus.NewRegistry()
	var storageMetrics *storage.Metrics
	if cfg.MetricsEnabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		storageMetrics, err = storage.NewMetrics(registry)
		if err != nil {
			zapLogger.Fatalf("failed to register storage metrics - %v", err)
		}
	}

	// Storage backend
	storageClient, err := storage.NewClient(cfg.StorageUrl, cfg.StorageTimeout, storageMetrics, zapLogger)
	if err != nil {
		zapLogger.Fatalf("failed to create storage client - %v", err)
	}

	// Services
	explorerService, err := explorer.NewService(storageClient, zapLogger)
	if err != nil {
		zapLogger.Fatalf("failed to create explorer service - %v", err)
	}

	// Handlers
	healthHandler, err := health.NewHandler(storageClient, zapLogger)
	if err != nil {
		zapLogger.Fatalf("failed to create health handler - %v", err)
	}

	explorerHandler, err := explorer.NewHandler(explorerService, storageClient, cfg.Currencies, zapLogger)
	if err != nil {
		zapLogger.Fatalf("failed to create explorer handler - %v", err)
	}

	// User tags are optional and need mongodb
	var userTagsHandler *usertags.Handler
	if cfg.UserTagsEnabled() {
		db, err := mongodb.NewConnection(context.Background(), cfg.MongoDbUrl)
		if err != nil {
			zapLogger.Fatalf("failed to connect to mongodb: %s", err)
		}
		defer mongodb.Close(db, zapLogger)

		if err := mongodb.Ping(context.Background(), db); err != nil {
			zapLogger.Fatal(err)
		}
		zapLogger.Info("DB connected successfully")

		if err := migration.RunMigrations(context.Background(), db, cfg.MongoDbName, zapLogger); err != nil {
			zapLogger.Fatalf("failed to run migrations - %v", err)
		}

		userTagsRepository, err := usertags.NewRepository(db, cfg.MongoDbName, zapLogger)
		if err != nil {
			zapLogger.Fatalf("failed to create user tags repository - %v", err)
		}

		userTagsService, err := usertags.NewService(userTagsRepository, cfg.Currencies, zapLogger)
		if err != nil {
			zapLogger.Fatalf("failed to create user tags service - %v", err)
		}

		userTagsHandler, err = usertags.NewHandler(userTagsService, zapLogger)
		if err != nil {
			zapLogger.Fatalf("failed to create user tags handler - %v", err)
		}
	} else {
		zapLogger.Info("MONGO_DB_URL is not set, user tags are disabled")
	}

	// Create fiber app
	app := fiber.New(fiber.Config{
		ServerHeader: "GraphSense-Dashboard",
		Views:        explorer.NewViews(),
	})

	app.Use(recover.New())
	app.Use(logger.RequestLogger(zapLogger))

	// Init cors
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Content-Length, Accept-Encoding, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	// Fixed prefixes go first; the explorer owns /:currency
	app.Route("/api/v1", func(router fiber.Router) {
		healthHandler.SetupRoutes(router)
	})

	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	currencyRouter := explorerHandler.SetupRoutes(app)
	if userTagsHandler != nil {
		userTagsHandler.SetupRoutes(currencyRouter, explorerHandler.ValidateCurrency)
	}

	// Handle 404 page
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(map[string]string{"error": "page not found"})
	})

	// Start the server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zapLogger.Fatal(err)
		}
	}()

	zapLogger.Infof("Server started on port %v", cfg.Port)

	// Create a context that will be used to gracefully shut down the server
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Wait for the termination signal
	<-ctx.Done()

	// Perform the graceful shutdown by closing the server
	if err := app.Shutdown(); err != nil {
		zapLogger.Fatal(err)
	}

	zapLogger.Info("Server gracefully stopped")
}
