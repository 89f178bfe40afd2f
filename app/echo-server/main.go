package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mixMaster/app/echo-server/metrics"
	"mixMaster/app/echo-server/router"
	"mixMaster/business/feedback"
	"mixMaster/business/mixer"
	"mixMaster/internal/middleware"
	psqlRepo "mixMaster/internal/repository/postgres"
	redisRepo "mixMaster/internal/repository/redis"
	"mixMaster/internal/rest"
	"mixMaster/pkg/config"
	"mixMaster/pkg/database"
	redisClient "mixMaster/pkg/database/redis"
	"mixMaster/pkg/logger"
	httpMetrics "mixMaster/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Mix Master", "version", cfg.App.Version, "env", cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is optional; without it every recommendation is computed fresh
	var (
		rdb   *goredis.Client
		cache mixer.SuggestionCache
	)
	if cfg.Redis.Enabled {
		rdb, err = redisClient.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, suggestion cache disabled", "error", err)
		} else {
			cache = redisRepo.NewSuggestionCache(rdb, cfg.Redis.CacheTTL)
			logger.Info("Redis connected successfully")
		}
	}

	httpMetrics.Init()

	// Init repo
	liquidRepo := psqlRepo.NewLiquidRepository(db)
	feedbackRepo := psqlRepo.NewFeedbackRepository(db)

	// Init service
	mixerService := mixer.NewMixerService(liquidRepo, cache, mixer.Config{
		MinShare:          cfg.Mixer.MinShare,
		CombinationCap:    cfg.Mixer.CombinationCap,
		AcceptScore:       cfg.Mixer.AcceptScore,
		MaxSuggestions:    cfg.Mixer.MaxSuggestions,
		WindowTolerance:   cfg.Mixer.WindowTolerance,
		DistancePenalty:   cfg.Mixer.DistancePenalty,
		ConstraintBonus:   cfg.Mixer.ConstraintBonus,
		DefaultMaxLiquids: cfg.Mixer.DefaultMaxLiquids,
	})
	feedbackService := feedback.NewFeedbackService(feedbackRepo)

	// Init handler
	mixerHandler := rest.NewMixerHandler(mixerService)
	feedbackHandler := rest.NewFeedbackHandler(feedbackService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.TraceContext())
	e.Use(middleware.HTTPMetrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if cfg.Server.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: cfg.Server.RequestTimeout,
		}))
	}

	if cfg.JWT.SecretKey == "" {
		logger.Info("JWT secret not set, feedback is recorded anonymously")
	}

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupMixerRoutes(api, mixerHandler)
	router.SetupFeedbackRoutes(api, feedbackHandler, middleware.OptionalAuth(cfg.JWT.SecretKey))
	router.SetupOpsRoutes(e, metrics.Handler(), metrics.Health(func(c echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(c.Request().Context())
	}))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisClient.CloseRedisClient(rdb); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
