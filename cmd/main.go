package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"royale-campaigns/internal/adapter/cache"
	httpadapter "royale-campaigns/internal/adapter/http"
	"royale-campaigns/internal/adapter/paystack"
	"royale-campaigns/internal/adapter/postgres"
	"royale-campaigns/internal/adapter/usecase"
	"royale-campaigns/internal/config"
	"royale-campaigns/internal/core/port"
	"royale-campaigns/internal/core/pricing"
	"royale-campaigns/internal/db"
)

// main is the entry point of the campaign backend. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and payment collaborators, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo records seeded")
		}
	}

	// Payment-reference replay guard is optional; without Redis the
	// checkout still runs, just without the guard.
	var refs port.ReferenceStore
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err = rdb.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer rdb.Close()
		refs = cache.NewRedisReferenceStore(rdb, cfg.Redis.ReferenceTTL)
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	gateway := paystack.New(cfg.Paystack, logger)
	engine := pricing.NewEngine(pricing.DefaultTable())

	checkout := usecase.NewCheckout(engine, campaignRepo, gateway, gateway, refs, logger)
	applications := usecase.NewApplications(applicationRepo, logger)

	handler := httpadapter.NewHandler(checkout, applications, campaignRepo, applicationRepo, cfg.Admin.Password, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
