package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/api/handlers"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/cache/redis"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/metrics"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/middleware/ratelimit"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/middleware/security"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/middleware/validation"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/provider"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/report"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/storage/sqlite"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/upload"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/config"
	appLogger "github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Accessibility AI Agent")

	metrics.Init()

	if err := os.MkdirAll(cfg.Uploads.Dir, 0755); err != nil {
		appLogger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	store := training.NewStore(cfg.Training.DataPath)
	metrics.TrainingExamplesTotal.Set(float64(store.Len()))

	model, err := provider.New(cfg.AI)
	if err != nil {
		appLogger.Fatal("Failed to create AI provider", zap.Error(err))
	}

	history, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer history.Close()

	if err := history.InitSchema(); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	generator := report.NewGenerator(store, model)

	if cfg.Cache.Enabled {
		cache, err := redis.NewClient(cfg.Cache.Host, cfg.Cache.Port, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			appLogger.Warn("Report cache unavailable, continuing without it", zap.Error(err))
		} else {
			defer cache.Close()
			generator.WithCache(cache, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
		}
	}

	cleaner := upload.NewCleaner(
		cfg.Uploads.Dir,
		time.Duration(cfg.Uploads.MaxAgeHours)*time.Hour,
		time.Duration(cfg.Uploads.CleanupMinutes)*time.Minute,
	)
	cleaner.Start()
	defer cleaner.Stop()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(validation.Middleware(validation.Config{Logger: appLogger.GetLogger()}))

	limiter := ratelimit.New(ratelimit.Config{Logger: appLogger.GetLogger()})
	defer limiter.Stop()

	reportHandler := handlers.NewReportHandler(generator, history, cfg.AI.Provider, cfg.Uploads.Dir)
	trainingHandler := handlers.NewTrainingHandler(store)

	api := app.Group("/api/v1", limiter.Middleware())

	api.Post("/reports", reportHandler.GenerateReport)
	api.Get("/reports/history", reportHandler.GetHistory)

	api.Post("/training/examples", trainingHandler.AddExample)
	api.Get("/training/examples", trainingHandler.ListExamples)
	api.Delete("/training/examples/:id", trainingHandler.RemoveExample)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":            "healthy",
			"provider":          cfg.AI.Provider,
			"training_examples": store.Len(),
			"timestamp":         time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"provider":           cfg.AI.Provider,
			"max_file_size":      cfg.Uploads.MaxFileSize,
			"upload_path":        cfg.Uploads.Dir,
			"training_data_path": cfg.Training.DataPath,
		})
	})

	app.Get("/metrics", metrics.Handler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting",
		zap.String("address", addr),
		zap.String("provider", cfg.AI.Provider),
		zap.Int("training_examples", store.Len()),
	)

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
