package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"greeter/internal/config"
	"greeter/internal/database"
	"greeter/internal/database/migration"
	"greeter/internal/logger"
	"greeter/internal/otel"
	"greeter/internal/repository/postgres"
	"greeter/internal/server"
	"greeter/internal/service"
	"greeter/internal/storage"
	"greeter/internal/upstream"
)

// @title Greeter API
// @version 1.0
// @description Greetings, US disaster lookups, nearby places and a disaster store.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("server_failed")
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.WithError(err).Error("tracing_shutdown_failed")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := upstream.NewClient(cfg.Upstream)
	disasterDeps := service.DisasterDeps{
		Census:          client,
		Declarations:    client,
		Events:          client,
		Geocoder:        client,
		Logger:          log,
		RecentLimit:     cfg.Upstream.RecentDisasterLimit,
		GeocodeInterval: cfg.Upstream.GeocodeInterval(),
	}

	// Database (optional): backs the disaster store.
	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		disasterDeps.Repo = postgres.NewDisasterPostgres(db)
	}

	// Object storage (optional): archives the raw NASA feed.
	if cfg.MinIO.Enabled() {
		objects, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("init minio: %w", err)
		}
		disasterDeps.Objects = objects
		log.WithField("bucket", cfg.MinIO.Bucket).Info("storage_configured")
	}

	app, err := server.New(server.Deps{
		Config:    cfg,
		Logger:    log,
		Greeter:   service.NewGreetingService(),
		Disasters: service.NewDisasterService(disasterDeps),
		Places:    service.NewPlacesService(client),
		DB:        db,
		Registry:  reg,
	})
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	return server.Run(ctx, app, cfg.ListenAddr(), cfg.ShutdownTimeout(), log)
}

func openDatabase(ctx context.Context, cfg *config.AppConfig, log *logrus.Logger) (*sql.DB, error) {
	if !cfg.Database.Enabled() {
		log.Info("database_disabled")
		return nil, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
