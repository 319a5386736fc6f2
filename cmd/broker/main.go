package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connection-broker/config"
	pgBackend "connection-broker/internal/adapter/backend/postgres"
	redisBackend "connection-broker/internal/adapter/backend/redis"
	httpHandler "connection-broker/internal/adapter/http/handler"
	"connection-broker/internal/core/ports"
	"connection-broker/internal/service"
	"connection-broker/pkg/logger"
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

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Connection Broker")

	ctx := context.Background()
	obs := service.NewLogObserver(logger.Component(log, "pool"))

	// PostgreSQL: elastic pool with expiration and a background reaper.
	pgFactory := pgBackend.NewFactory(cfg.Database, logger.Component(log, "postgres"))
	pgPool, err := service.NewAdvancedPool(ctx, "postgres", pgFactory, cfg.Pool, obs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL pool")
	}
	log.Info().Int("min_size", cfg.Pool.MinSize).Int("max_size", cfg.Pool.MaxSize).Msg("PostgreSQL pool ready")

	// Redis: fixed-size pool, fully provisioned up front.
	redisFactory := redisBackend.NewFactory(cfg.Redis, logger.Component(log, "redis"))
	redisPool, err := service.NewBasicPool(ctx, "redis", redisFactory, cfg.Pool.MinSize, cfg.Pool.ConnectTimeout, obs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Redis pool")
	}
	log.Info().Int("size", cfg.Pool.MinSize).Msg("Redis pool ready")

	// Transaction coordination over the PostgreSQL pool.
	txManager := service.NewTxManager(pgPool, log)

	pools := map[string]ports.Pool{
		"postgres": pgPool,
		"redis":    redisPool,
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Pools: pools,
		HealthCheckers: []ports.HealthChecker{
			service.NewTxHealth("postgres", txManager),
			service.NewPoolHealth("redis", redisPool),
		},
		Logger: log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Drain pools after the HTTP surface stops handing them out.
	if err := pgPool.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("PostgreSQL pool close failed")
	}
	if err := redisPool.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Redis pool close failed")
	}

	log.Info().Msg("Server exited")
}
