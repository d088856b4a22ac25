package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rewards-banner-service/config"
	httpHandler "rewards-banner-service/internal/adapter/http/handler"
	"rewards-banner-service/internal/adapter/http/middleware"
	pgStorage "rewards-banner-service/internal/adapter/storage/postgres"
	redisStorage "rewards-banner-service/internal/adapter/storage/redis"
	"rewards-banner-service/internal/core/ports"
	"rewards-banner-service/internal/service"
	"rewards-banner-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Rewards Banner Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Storage
	bannerRepo := pgStorage.NewBannerRepo(pool)
	bannerCache := redisStorage.NewBannerCache(rdb)

	// Business services
	bannerSvc := service.NewBannerService(bannerRepo, bannerCache, cfg.Cache.BannerTTL, log)

	deps := httpHandler.RouterDeps{
		BannerSvc: bannerSvc,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       log,
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		deps.RateLimitRules = middleware.RateLimitRules(
			cfg.RateLimit.PublishLimit,
			cfg.RateLimit.ParcelLimit,
			cfg.RateLimit.Window,
		)
	} else {
		log.Warn().Msg("Rate limiting disabled")
	}

	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
