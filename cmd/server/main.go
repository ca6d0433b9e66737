package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/keydrill/internal/api"
	"github.com/vytor/keydrill/internal/config"
	"github.com/vytor/keydrill/internal/db"
	"github.com/vytor/keydrill/internal/events"
	"github.com/vytor/keydrill/internal/jobs"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/progression"
	"github.com/vytor/keydrill/internal/repository/sqlite"
	"github.com/vytor/keydrill/internal/services"
	"github.com/vytor/keydrill/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("keydrill server starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("notify_worker_count=%d", cfg.NotifyWorkerCount)
	log.Debug("notify_queue_size=%d", cfg.NotifyQueueSize)
	log.Debug("progression_webhook_enabled=%t", cfg.ProgressionWebhookURL != "")
	log.Debug("default_session_size=%d", cfg.DefaultSessionSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	itemRepo := sqlite.NewReviewItemRepository(database.DB)
	catalogRepo := sqlite.NewCatalogRepository(database.DB)
	bus := events.NewBus()
	clock := services.Clock(func() time.Time { return time.Now().UTC() })

	dueService := services.NewDueService(itemRepo, catalogRepo, clock)
	srv := &api.Server{
		DB:                 database,
		ReviewItemService:  services.NewReviewItemService(itemRepo, clock),
		DueService:         dueService,
		SessionService:     services.NewSessionService(itemRepo, dueService, bus, clock),
		CatalogService:     services.NewCatalogService(catalogRepo, itemRepo, clock),
		StatsService:       services.NewStatsService(itemRepo, clock),
		DefaultSessionSize: cfg.DefaultSessionSize,
	}

	ctx, cancel := context.WithCancel(context.Background())
	notifyPool := worker.NewPool(cfg.NotifyWorkerCount, cfg.NotifyQueueSize)
	notifyPool.Start(ctx)

	forwarded := make(chan struct{})
	completed, unsubscribe := bus.Subscribe(cfg.NotifyQueueSize, events.KindSessionCompleted)
	go func() {
		defer close(forwarded)
		client := progression.New(cfg.ProgressionWebhookURL)
		if !client.Enabled() {
			log.Info("progression webhook not configured, session summaries are not forwarded")
		}
		jobs.Forward(logger.NewContext(ctx, log), completed, jobs.NewWorkerQueue(notifyPool, client))
	}()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping event forwarding")
	unsubscribe()
	<-forwarded
	bus.Close()

	log.Debug("stopping notification pool")
	notifyPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("keydrill server stopped")
	log.Info("===========================================")
}
