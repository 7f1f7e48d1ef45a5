package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rogerio-castellano/ops-dashboard/docs"
	"github.com/rogerio-castellano/ops-dashboard/internal/config"
	"github.com/rogerio-castellano/ops-dashboard/internal/db"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/ops-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ops-dashboard/internal/metrics"
	"github.com/rogerio-castellano/ops-dashboard/internal/observability"
	"github.com/rogerio-castellano/ops-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

// @title Operations Dashboard API
// @version 1.0
// @description Filtered collection views and aggregated business metrics for the operations dashboard.
// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("❌ invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Error("❌ invalid catalog", slog.String("file", cfg.CatalogFile), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collections, closeStore, err := openCollections(cfg, logger)
	if err != nil {
		logger.Error("❌ could not open storage", slog.String("storage", cfg.Storage), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if cfg.SeedFile != "" {
		seed, err := repo.LoadSeed(cfg.SeedFile)
		if err != nil {
			logger.Error("❌ could not load seed", slog.String("file", cfg.SeedFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
		n, err := repo.Seed(collections, seed)
		if err != nil {
			logger.Error("❌ could not seed storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("🌱 seeded collections", slog.Int("created", n))
	}

	var presets repo.PresetRepository = repo.NewInMemoryPresetRepository()
	if cfg.RedisAddr != "" {
		rs, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("❌ could not connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rs.Close()
		presets = repo.NewRedisPresetRepository(rs)
	}

	metricsRepo := repo.NewDashboardMetricsRepository(metrics.NewMemo(catalog.Rules, cfg.MemoResolution))
	metricsRepo.SetRepositories(collections)

	handlers.SetLogger(logger)
	handlers.SetCatalog(catalog)
	handlers.SetCollectionRepo(collections)
	handlers.SetMetricsRepo(metricsRepo)
	handlers.SetPresetRepo(presets)
	handlers.SetExporter(observability.NewExporter())

	visitors := rl.NewVisitors(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go visitors.StartCleanupLoop(ctx, time.Minute, 5*time.Minute)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.NewRouter(router.Options{Logger: logger, Visitors: visitors}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown error", slog.String("error", err.Error()))
		}
	}()

	logger.Info("✅ server running", slog.String("addr", cfg.Addr), slog.String("storage", cfg.Storage))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func openCollections(cfg *config.Config, logger *slog.Logger) (repo.CollectionRepository, func(), error) {
	if cfg.Storage != config.StoragePostgres {
		return repo.NewInMemoryCollectionRepository(nil), func() {}, nil
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	pg := repo.NewPostgresCollectionRepository(database)
	if err := pg.EnsureSchema(); err != nil {
		database.Close()
		return nil, nil, err
	}
	logger.Info("🐘 connected to postgres")
	return pg, func() { database.Close() }, nil
}
