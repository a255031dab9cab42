package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/cache"
	"github.com/fightpicks/picks-api/internal/config"
	"github.com/fightpicks/picks-api/internal/handlers"
	"github.com/fightpicks/picks-api/internal/logic"
	"github.com/fightpicks/picks-api/internal/store"
	"github.com/fightpicks/picks-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Postgres
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("failed to connect to postgres", "error", err)
	}
	defer pg.Close()

	if err := store.EnsureSchema(ctx, pg); err != nil {
		sugar.Fatalw("failed to apply schema", "error", err)
	}

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("invalid redis url", "error", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		// The cache degrades to always-miss, so a cold Redis is a
		// warning, not a startup failure.
		sugar.Warnw("redis unreachable at startup, cache will miss through", "error", err)
	}

	// Core wiring
	predictionStore := store.NewPostgres(pg)
	loader := cache.NewLoader(cache.NewRedis(redisClient, logger))

	statsService := logic.NewStatsService(predictionStore, loader, sugar, cfg.StatsCacheTTL)
	predictionService := logic.NewPredictionService(predictionStore, loader, sugar)
	eventService := logic.NewEventService(predictionStore)

	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.ResolveWorkerCount,
		QueueSize:   cfg.ResolveQueueSize,
		Predictions: predictionService,
		Logger:      logger,
	})
	pool.Start(ctx)

	lockPoller := worker.NewLockPoller(predictionStore, logger, cfg.LockPollInterval)
	go lockPoller.Run(ctx)

	h := handlers.New(handlers.Config{
		Resolver:    pool,
		Postgres:    pg,
		Redis:       redisClient,
		Logger:      logger,
		Stats:       statsService,
		Predictions: predictionService,
		Events:      eventService,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handlers.NewRouter(h, cfg.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("http shutdown failed", "error", err)
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("pool shutdown failed", "error", err)
	}
}
