package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/config"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/progress"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source/localfile"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source/places"
)

const pollInterval = 250 * time.Millisecond

func main() {
	// Initialize logger first (with defaults)
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "text",
		ServiceName: "lead-intelligence-ingest",
	})
	logger.SetDefaultLogger(appLogger)

	// Parse command line flags
	campaignID := flag.Uint("campaign", 0, "Campaign ID to ingest into")
	createName := flag.String("create", "", "Create a campaign with this name and ingest into it")
	query := flag.String("query", "", "Search query (defaults to the campaign's search_query)")
	location := flag.String("location", "", "Location qualifier (defaults to the campaign's location)")
	maxResults := flag.Int("max", 50, "Maximum number of records to fetch (1-500)")
	sourceType := flag.String("source", "", "Data source override: places or localfile")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories and services
	leadRepo := repository.NewLeadRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	tracker := progress.NewTracker()

	campaignService := service.NewCampaignService(campaignRepo, appLogger)
	ingestService := service.NewIngestService(leadRepo, campaignRepo, tracker, nil, appLogger)

	ctx := context.Background()

	// Resolve the target campaign
	if *createName != "" {
		campaign := &domain.Campaign{
			Name:        *createName,
			SearchQuery: *query,
			Location:    *location,
		}
		if err := campaignService.Create(ctx, campaign); err != nil {
			appLogger.WithError(err).Fatal("Failed to create campaign")
		}
		*campaignID = campaign.ID
		appLogger.WithField(logger.FieldCampaignID, campaign.ID).Info("Campaign created")
	}
	if *campaignID == 0 {
		appLogger.Fatal("A campaign is required: pass -campaign <id> or -create <name>")
	}

	campaign, err := campaignService.Get(ctx, *campaignID)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load campaign")
	}
	if *query == "" {
		*query = campaign.SearchQuery
	}
	if *location == "" {
		*location = campaign.Location
	}

	// Pick the data source
	src, err := buildSource(cfg, *sourceType)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize data source")
	}

	appLogger.WithFields(logger.Fields{
		logger.FieldCampaignID: campaign.ID,
		logger.FieldSource:     src.Name(),
		"query":                *query,
		"location":             *location,
		"max_results":          *maxResults,
	}).Info("Starting ingestion")

	err = ingestService.StartIngestion(ctx, src, service.IngestRequest{
		CampaignID: campaign.ID,
		Query:      *query,
		Location:   *location,
		MaxResults: *maxResults,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to start ingestion")
	}

	// The run is asynchronous; poll the tracker until it reaches a
	// terminal state.
	var snap domain.IngestionProgress
	for {
		time.Sleep(pollInterval)
		snap = ingestService.GetProgress(campaign.ID)
		if snap.Status.Terminal() {
			break
		}
	}

	entry := appLogger.WithFields(logger.Fields{
		logger.FieldStatus:       string(snap.Status),
		logger.FieldLeadsFound:   snap.LeadsFound,
		logger.FieldLeadsCreated: snap.LeadsCreated,
		logger.FieldDuplicates:   snap.Duplicates,
	})
	if snap.Status == domain.IngestionStatusFailed {
		entry.WithField("error", snap.Error).Fatal("Ingestion failed")
	}
	entry.Info("Ingestion finished")
}

// buildSource picks the data source: an explicit -source flag wins,
// otherwise the configured localfile source, otherwise places.
func buildSource(cfg *config.Config, override string) (source.Source, error) {
	useLocal := cfg.Sources.LocalFile.Enabled
	switch strings.ToLower(override) {
	case "localfile":
		useLocal = true
	case "places":
		useLocal = false
	}

	if useLocal {
		return localfile.NewAdapter(cfg.Sources.LocalFile.Path), nil
	}

	cfg.Sources.Places.ResolveEnvVars()
	if err := cfg.Sources.Places.ValidateWithAPIKey(); err != nil {
		return nil, err
	}
	return places.NewAdapter(&cfg.Sources.Places), nil
}
