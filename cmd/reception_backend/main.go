package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/EssonoDev/dgi_reception_app/internal/adapters/database/jsonfile"
	"github.com/EssonoDev/dgi_reception_app/internal/adapters/notification"
	"github.com/EssonoDev/dgi_reception_app/internal/core/services"
	"github.com/EssonoDev/dgi_reception_app/internal/handlers"
	"github.com/EssonoDev/dgi_reception_app/internal/middleware"
	"github.com/EssonoDev/dgi_reception_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title DGI Reception Backend API
// @version 1.0
// @description Front-desk backend for a tax administration: guided visitor/package check-in, appointment book, badge pool, reporting.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := jsonfile.Open(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to open record store", slog.String("error", err.Error()), slog.String("data_dir", cfg.DataDir))
		os.Exit(1)
	}
	logger.Info("Record store opened", slog.String("data_dir", cfg.DataDir))

	repos := jsonfile.NewRepositoryProvider(store)

	provider := notification.NewProvider(os.Getenv("NOTIFICATION_PROVIDER"), logger)
	dispatcher := notification.NewDispatcher(provider, cfg.NotificationQueueSize, logger,
		notification.WithSendTimeout(cfg.NotificationSendTimeout))
	defer dispatcher.Close()

	container := services.NewServiceContainer(cfg, repos, dispatcher)

	if cfg.SeedOnStart {
		if err := container.Directory.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed reference data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if rate, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	} else {
		ipLimiter := limiter.New(memory.NewStore(), rate)
		r.Use(middleware.RateLimit(ipLimiter))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
