package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/archive"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/progress"
	"github.com/atif128873806/lead-intelligence-platfor/internal/scoring"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source"
)

// MaxIngestResults is the policy cap on records one ingestion run may request.
const MaxIngestResults = 500

// leadStore is the slice of the lead repository the pipeline needs.
type leadStore interface {
	CreateBatch(ctx context.Context, leads []*domain.Lead) error
	ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error)
}

// campaignStore is the slice of the campaign repository the pipeline needs.
type campaignStore interface {
	GetByID(ctx context.Context, id uint) (*domain.Campaign, error)
	ApplyIngestCounters(ctx context.Context, id uint, counters domain.IngestCounters) error
}

// IngestService runs the lead ingestion pipeline: fetch records from a
// source, deduplicate, score, persist in one batch, and roll the outcome
// into the campaign counters.
type IngestService struct {
	leads     leadStore
	campaigns campaignStore
	tracker   *progress.Tracker
	archiver  *archive.Archiver
	logger    *logger.Logger
}

// NewIngestService creates a new ingest service. archiver may be nil,
// which disables run snapshots.
func NewIngestService(
	leads leadStore,
	campaigns campaignStore,
	tracker *progress.Tracker,
	archiver *archive.Archiver,
	log *logger.Logger,
) *IngestService {
	return &IngestService{
		leads:     leads,
		campaigns: campaigns,
		tracker:   tracker,
		archiver:  archiver,
		logger:    log,
	}
}

// log returns a logger from context if available, otherwise returns the service logger
func (s *IngestService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// IngestRequest describes one ingestion run for a campaign.
type IngestRequest struct {
	CampaignID uint
	Query      string
	Location   string
	MaxResults int
}

// StartIngestion validates the request, claims the campaign's run slot,
// and launches the pipeline in the background. The caller gets an
// immediate answer; run outcomes are observable only through GetProgress.
// Parameters:
//   - ctx: caller context, used for the synchronous precondition checks only.
//   - src: source the run will fetch records from.
//   - req: run parameters.
// Returns:
//   - error: domain.ErrInvalidMaxResults, domain.ErrCampaignNotFound, or
//     domain.ErrIngestionRunning; nil once the run is accepted.
func (s *IngestService) StartIngestion(ctx context.Context, src source.Source, req IngestRequest) error {
	if req.MaxResults < 1 || req.MaxResults > MaxIngestResults {
		return domain.ErrInvalidMaxResults
	}

	if _, err := s.campaigns.GetByID(ctx, req.CampaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCampaignNotFound
		}
		return err
	}

	if !s.tracker.Begin(req.CampaignID) {
		return domain.ErrIngestionRunning
	}

	// The run outlives the caller's request, so it gets a fresh context
	// carrying only the run's log fields.
	runID := uuid.New().String()
	runLog := s.log(ctx).WithFields(logger.Fields{
		logger.FieldCampaignID: req.CampaignID,
		logger.FieldRunID:      runID,
		logger.FieldSource:     src.Name(),
	})
	runCtx := runLog.WithContext(context.Background())

	go s.run(runCtx, src, req, runID)

	return nil
}

// GetProgress returns the current progress for a campaign. It never fails;
// campaigns with no recorded run report not_started.
func (s *IngestService) GetProgress(campaignID uint) domain.IngestionProgress {
	return s.tracker.Get(campaignID)
}

// RequestStop asks a running ingestion to stop before its next record.
// Best-effort: a no-op when nothing is running, and a run already inside
// a source fetch finishes that fetch first.
func (s *IngestService) RequestStop(campaignID uint) {
	s.tracker.RequestStop(campaignID)
}

// run executes the pipeline. All failures end in the tracker, never in a
// return value; the caller was answered when the run was accepted.
func (s *IngestService) run(ctx context.Context, src source.Source, req IngestRequest, runID string) {
	start := time.Now()
	log := s.log(ctx)

	log.WithFields(logger.Fields{
		"query":       req.Query,
		"location":    req.Location,
		"max_results": req.MaxResults,
	}).Info("Starting ingestion run")

	s.tracker.SetPercent(req.CampaignID, 10)

	records, err := src.Fetch(ctx, req.Query, req.Location, req.MaxResults)
	if err != nil {
		log.WithError(err).Error("Source fetch failed")
		s.tracker.Finish(req.CampaignID, domain.IngestionStatusFailed, err.Error())
		return
	}

	s.tracker.Update(req.CampaignID, func(p *domain.IngestionProgress) {
		p.LeadsFound = len(records)
	})
	s.tracker.SetPercent(req.CampaignID, 50)

	dedup := NewDedupIndex(s.leads)
	staged := make([]*domain.Lead, 0, len(records))
	created, dups, hot := 0, 0, 0
	stopped := false

	total := len(records)
	for i, rec := range records {
		if s.tracker.StopRequested(req.CampaignID) {
			stopped = true
			log.WithField(logger.FieldCount, i).Info("Stop requested, ending run early")
			break
		}

		if strings.TrimSpace(rec.Name) == "" {
			log.Debug("Skipping record without a business name")
		} else if isDup, derr := dedup.IsDuplicate(ctx, rec); derr != nil {
			// One bad record must not sink the batch.
			log.WithError(derr).Warn("Duplicate check failed, skipping record")
		} else if isDup {
			dups++
			s.tracker.Update(req.CampaignID, func(p *domain.IngestionProgress) {
				p.Duplicates = dups
			})
		} else {
			lead := s.buildLead(ctx, rec, req.CampaignID)
			if lead.Priority == domain.PriorityA {
				hot++
			}
			staged = append(staged, lead)
			created++
			s.tracker.Update(req.CampaignID, func(p *domain.IngestionProgress) {
				p.LeadsCreated = created
			})
		}

		s.tracker.SetPercent(req.CampaignID, 50+((i+1)*40)/total)
	}

	if len(staged) > 0 {
		if err := s.leads.CreateBatch(ctx, staged); err != nil {
			log.WithError(err).Error("Failed to persist staged leads")
			s.tracker.Finish(req.CampaignID, domain.IngestionStatusFailed, err.Error())
			return
		}
	}

	counters := domain.IngestCounters{
		TotalLeads:     created,
		NewLeads:       created,
		DuplicateLeads: dups,
		HotLeads:       hot,
	}
	if err := s.campaigns.ApplyIngestCounters(ctx, req.CampaignID, counters); err != nil {
		log.WithError(err).Error("Failed to update campaign counters")
		s.tracker.Finish(req.CampaignID, domain.IngestionStatusFailed, err.Error())
		return
	}

	status := domain.IngestionStatusCompleted
	if stopped {
		status = domain.IngestionStatusStopped
	}
	s.tracker.Finish(req.CampaignID, status, "")

	s.archiveRun(ctx, req, runID, src.Name(), status, start, records, created, dups)

	logger.With(logger.Fields{logger.FieldStatus: string(status)}).
		WithRunCounters(len(records), created, dups).
		WithDuration(time.Since(start).Milliseconds()).
		Info(ctx, "Ingestion run finished")
}

// buildLead scores a record and shapes it into a persistable lead
func (s *IngestService) buildLead(ctx context.Context, rec domain.RawBusinessRecord, campaignID uint) *domain.Lead {
	if rec.Phone != "" && !scoring.IsValidPhone(rec.Phone) {
		s.log(ctx).WithField("business", rec.Name).Warn("Phone number looks invalid")
	}
	if rec.Website != "" && !scoring.IsValidWebsite(rec.Website) {
		s.log(ctx).WithField("business", rec.Name).Warn("Website URL looks invalid")
	}

	return leadFromRecord(rec, &campaignID)
}

// archiveRun uploads a snapshot of the finished run. Archive failures only
// warn; the run outcome stands either way.
func (s *IngestService) archiveRun(
	ctx context.Context,
	req IngestRequest,
	runID, sourceName string,
	status domain.IngestionStatus,
	start time.Time,
	records []domain.RawBusinessRecord,
	created, dups int,
) {
	if s.archiver == nil {
		return
	}

	snap := &archive.RunSnapshot{
		CampaignID:   req.CampaignID,
		RunID:        runID,
		Source:       sourceName,
		Query:        req.Query,
		Location:     req.Location,
		StartedAt:    start,
		FinishedAt:   time.Now(),
		Status:       string(status),
		LeadsFound:   len(records),
		LeadsCreated: created,
		Duplicates:   dups,
		Records:      records,
	}

	key, err := s.archiver.SaveSnapshot(ctx, snap)
	if err != nil {
		s.log(ctx).WithError(err).Warn("Failed to archive run snapshot")
		return
	}
	s.log(ctx).WithField("snapshot_key", key).Debug("Archived run snapshot")
}
