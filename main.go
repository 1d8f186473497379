package main

import (
	"context"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/config"
	"fleet-dashboard-service/core"
	"fleet-dashboard-service/server"
	"fleet-dashboard-service/session"
	"fleet-dashboard-service/workers/routes"
	"fleet-dashboard-service/workers/shipments"
	"fleet-dashboard-service/workers/shipments/repositories"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := core.NewLogger(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var (
		store session.Store
		db    *gorm.DB
	)
	if cfg.DSN != "" {
		db, err = gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		gormStore := session.NewGormStore(db)
		if err := gormStore.Migrate(); err != nil {
			logger.Fatal("Failed to migrate session table", zap.Error(err))
		}
		store = gormStore
	} else {
		path := cfg.SessionFile
		if path == "" {
			path = session.DefaultFilePath()
		}
		logger.Warn("DATABASE_DSN not set, keeping the session in a file and skipping the shipment mirror",
			zap.String("path", path),
		)
		store = session.NewFileStore(path)
	}

	sess := session.New(store)
	client := api.New(api.Config{BaseURL: cfg.Api.BaseUri, Timeout: cfg.Api.Timeout}, sess, logger)
	tracker := routes.NewTracker(sess, client, logger)

	ticker := routes.NewTicker(tracker, func(route session.ActiveRoute, elapsed string) {
		logger.Debug("Route in progress",
			zap.Int64("route_id", route.ID),
			zap.String("elapsed", elapsed),
		)
	}, logger)
	workers := []core.Worker{ticker}

	if db != nil {
		repo := repositories.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			logger.Fatal("Failed to migrate shipment tables", zap.Error(err))
		}
		workers = append(workers, shipments.NewWorker(logger, repo, shipments.NewUserSource(client, sess)).
			WithSchedule(cfg.ShipmentSyncSchedule))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orchestrator := core.NewOrchestrator(logger, workers)
	c, err := orchestrator.Start(ctx)
	if err != nil {
		logger.Fatal("Failed to start workers", zap.Error(err))
	}
	defer c.Stop()

	router := server.NewRouter(server.NewHandler(tracker, ticker, logger), logger, cfg.LogLevel == "debug")
	srv := server.New(cfg.HTTPAddr, router, logger)
	srv.Start()

	// Wait for termination signal to exit gracefully
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
