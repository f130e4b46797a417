package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/api"
	"github.com/atif128873806/lead-intelligence-platfor/internal/archive"
	"github.com/atif128873806/lead-intelligence-platfor/internal/auth"
	"github.com/atif128873806/lead-intelligence-platfor/internal/config"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/progress"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source/localfile"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source/places"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewFromEnv(logger.LoadFromEnv())
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize run-snapshot archive when enabled
	archiver := buildArchiver(cfg, appLogger)

	// Initialize the business-data source
	src, err := buildSource(cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize data source")
	}
	appLogger.WithField(logger.FieldSource, src.Name()).Info("Data source ready")

	// Initialize services
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	tracker := progress.NewTracker()

	svcs := api.Services{
		Auth:      service.NewAuthService(userRepo, tokenManager, appLogger),
		Lead:      service.NewLeadService(leadRepo, appLogger),
		Campaign:  service.NewCampaignService(campaignRepo, appLogger),
		Dashboard: service.NewDashboardService(leadRepo, campaignRepo),
		Ingest:    service.NewIngestService(leadRepo, campaignRepo, tracker, archiver, appLogger),
	}

	// Provision demo data for local environments when asked
	if os.Getenv("SEED_DEMO") == "true" {
		seeder := service.NewSeedService(userRepo, leadRepo, campaignRepo, appLogger)
		if result, err := seeder.SeedDemo(context.Background()); err != nil {
			appLogger.WithError(err).Warn("Demo seeding failed")
		} else {
			appLogger.WithField("status", result.Status).Info("Demo seeding finished")
		}
	}

	// Setup router
	router := api.SetupRouter(cfg, appLogger, db, svcs, src)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}

// buildSource picks the configured business-data source. The local file
// source wins when enabled so offline setups need no API key.
func buildSource(cfg *config.Config) (source.Source, error) {
	if cfg.Sources.LocalFile.Enabled {
		return localfile.NewAdapter(cfg.Sources.LocalFile.Path), nil
	}

	cfg.Sources.Places.ResolveEnvVars()
	if err := cfg.Sources.Places.Validate(); err != nil {
		return nil, err
	}
	return places.NewAdapter(&cfg.Sources.Places), nil
}

// buildArchiver creates the snapshot archiver, or nil when archiving is
// disabled or the object store cannot be reached.
func buildArchiver(cfg *config.Config, appLogger *logger.Logger) *archive.Archiver {
	if !cfg.Archive.Enabled {
		return nil
	}

	store, err := archive.NewStore(&archive.Config{
		Endpoint:  cfg.Archive.Endpoint,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		UseSSL:    cfg.Archive.UseSSL,
		Bucket:    cfg.Archive.Bucket,
		Region:    cfg.Archive.Region,
		PublicURL: cfg.Archive.PublicURL,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Run archiving disabled: object store unavailable")
		return nil
	}

	if s3store, ok := store.(*archive.S3Store); ok {
		if err := s3store.EnsureBucket(context.Background()); err != nil {
			appLogger.WithError(err).Warn("Run archiving disabled: bucket check failed")
			return nil
		}
	}

	return archive.NewArchiver(store)
}
