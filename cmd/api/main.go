// Package main is the entry point for the GlobeTrotter API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/auth"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/cache"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/config"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/handler"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/middleware"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/repo"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/internal/service"
	"github.com/Vasundra417/globetrottter-odoo-hackathon/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	if err := runMigrations(ctx, cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations applied")

	// --- Redis ------------------------------------------------------------
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()
	logger.Info("redis connection established")

	// --- Wiring -----------------------------------------------------------
	cacheLayer := cache.New(redisClient)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repo.NewUserRepo(pool)
	tripRepo := repo.NewTripRepo(pool)
	stopRepo := repo.NewStopRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)
	budgetRepo := repo.NewBudgetRepo(pool)
	shareRepo := repo.NewShareRepo(pool)
	settingsRepo := repo.NewSettingsRepo(pool)
	parkingRepo := repo.NewParkingRepo(pool)
	statsRepo := repo.NewStatsRepo(pool)

	loader := service.NewSnapshotLoader(tripRepo, stopRepo, activityRepo, budgetRepo, cacheLayer)

	handlers := handler.NewHandlers(
		service.NewUserService(userRepo, tokens),
		service.NewTripService(tripRepo, cacheLayer),
		service.NewStopService(tripRepo, stopRepo, cacheLayer),
		service.NewActivityService(tripRepo, stopRepo, activityRepo, budgetRepo, cacheLayer),
		service.NewBudgetService(tripRepo, budgetRepo, loader, cacheLayer),
		service.NewItineraryService(tripRepo, loader),
		service.NewShareService(tripRepo, stopRepo, activityRepo, shareRepo, userRepo, loader),
		service.NewSettingsService(tripRepo, settingsRepo, cacheLayer),
		service.NewParkingService(tripRepo, stopRepo, parkingRepo, budgetRepo, cacheLayer),
		service.NewAdminService(statsRepo, cacheLayer),
		cfg.PublicBaseURL,
		logger,
	)

	router := handler.NewRouter(handlers, handler.RouterDeps{
		Authenticate: middleware.NewAuthenticator(tokens, userRepo),
		RequireAdmin: middleware.RequireAdmin,
		CORSOrigins:  cfg.CORSOrigins,
		Health:       handler.HealthHandlerFunc(pool, &redisPingerAdapter{client: redisClient}, logger),
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-stop:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// runMigrations applies the embedded migrations at boot. goose needs a
// database/sql handle, so a short-lived one is opened alongside the pool.
func runMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// redisPingerAdapter adapts redis.Client to the handler's pinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
