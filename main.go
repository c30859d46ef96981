package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncinga/temi-event-backend/config"
	"github.com/ncinga/temi-event-backend/handlers"
	storemongo "github.com/ncinga/temi-event-backend/internal/store/mongo"
	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/router"
	"github.com/ncinga/temi-event-backend/services"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	mongoClient, err := storemongo.Connect(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to initialize mongo client: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(shutdownCtx); err != nil {
			log.Warnw("Failed to close mongo client", "error", err)
		}
	}()

	registrationStore := storemongo.NewRegistrationStore(mongoClient)
	feedbackStore := storemongo.NewFeedbackStore(mongoClient)

	// The visitor directory is loaded once and shared read-only by all
	// requests; name lookup works even when storage is unreachable.
	visitorService := services.LoadVisitorService(cfg.VisitorsFile)
	healthService := services.NewHealthService(mongoClient, visitorService, cfg.Server.Version)

	// Index creation is best-effort: an unreachable store at boot leaves the
	// service in degraded mode instead of aborting startup.
	indexCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	if err := mongoClient.EnsureIndexes(indexCtx); err != nil {
		log.Warnw("Could not ensure store indexes, running degraded", "error", err)
		healthService.SetStoreDegraded(true)
	} else {
		log.Info("Store indexes ensured")
	}
	cancel()

	emailService := services.NewEmailService(&cfg.SMTP, cfg.Export.Recipient)
	exportService := services.NewExportService(registrationStore, emailService, cfg.Export.MaxRows)

	r := router.SetupRouter(router.Dependencies{
		Config:              cfg,
		RegistrationHandler: handlers.NewRegistrationHandler(registrationStore, cfg.Export.MaxRows),
		FeedbackHandler:     handlers.NewFeedbackHandler(feedbackStore, cfg.Export.MaxRows),
		ExportHandler:       handlers.NewExportHandler(exportService),
		VisitorHandler:      handlers.NewVisitorHandler(visitorService),
		PagesHandler:        handlers.NewPagesHandler(registrationStore, feedbackStore),
		HealthHandler:       handlers.NewHealthHandler(healthService),
		TemplatesGlob:       "templates/*.html",
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Shut down on SIGINT/SIGTERM so in-flight requests drain and the
	// deferred mongo close runs.
	stopCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server exited: %v", err)
		}
	}()

	<-stopCtx.Done()
	log.Info("Shutdown signal received, draining connections")

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()
	if err := srv.Shutdown(drainCtx); err != nil {
		log.Warnw("Forced server shutdown", "error", err)
	}
	log.Info("Server stopped")
}
