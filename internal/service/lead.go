package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
	"github.com/atif128873806/lead-intelligence-platfor/internal/scoring"
)

// leadRepo is the slice of the lead repository the lead service needs.
type leadRepo interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id uint) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	List(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, int64, error)
	ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error)
	ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error)
}

// LeadService owns lead CRUD semantics: scoring on create, duplicate
// rejection against storage, and lifecycle transitions.
type LeadService struct {
	repo   leadRepo
	logger *logger.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(repo leadRepo, log *logger.Logger) *LeadService {
	return &LeadService{
		repo:   repo,
		logger: log,
	}
}

// log returns a logger from context if available, otherwise returns the service logger
func (s *LeadService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// Create scores and persists a manually submitted business record.
// Duplicate checks run against all stored leads, by source identifier and
// by fingerprint.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - rec: business record to turn into a lead.
//   - campaignID: campaign to attach the lead to, may be nil.
// Returns:
//   - *domain.Lead: persisted lead with scores applied.
//   - error: domain.ErrEmptyBusinessName, domain.ErrDuplicateLead, or a
//     storage error.
func (s *LeadService) Create(ctx context.Context, rec domain.RawBusinessRecord, campaignID *uint) (*domain.Lead, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return nil, domain.ErrEmptyBusinessName
	}

	if rec.SourceURL != "" {
		exists, err := s.repo.ExistsBySourceURL(ctx, rec.SourceURL)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateLead
		}
	}

	exists, err := s.repo.ExistsByFingerprint(ctx, rec.Fingerprint())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateLead
	}

	lead := leadFromRecord(rec, campaignID)
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.log(ctx).WithFields(logger.Fields{
		"lead_id":  lead.ID,
		"priority": lead.Priority,
	}).Info("Lead created")

	return lead, nil
}

// Get retrieves a lead by ID.
// Returns domain.ErrLeadNotFound when no such lead exists.
func (s *LeadService) Get(ctx context.Context, id uint) (*domain.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// List retrieves leads matching the filter along with the total count.
func (s *LeadService) List(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, int64, error) {
	return s.repo.List(ctx, filter)
}

// LeadUpdate carries the mutable lead fields; nil means leave unchanged.
type LeadUpdate struct {
	Status     *domain.LeadStatus
	Notes      *string
	AssignedTo *string
}

// Update applies a partial update to a lead. Transitioning into the
// contacted status stamps LastContactedAt.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: lead ID.
//   - upd: fields to change.
// Returns:
//   - *domain.Lead: updated lead.
//   - error: domain.ErrLeadNotFound, domain.ErrInvalidStatus, or a
//     storage error.
func (s *LeadService) Update(ctx context.Context, id uint, upd LeadUpdate) (*domain.Lead, error) {
	lead, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		if *upd.Status == domain.LeadStatusContacted && lead.Status != domain.LeadStatusContacted {
			now := time.Now()
			lead.LastContactedAt = &now
		}
		lead.Status = *upd.Status
	}
	if upd.Notes != nil {
		lead.Notes = *upd.Notes
	}
	if upd.AssignedTo != nil {
		lead.AssignedTo = *upd.AssignedTo
	}

	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// Score computes scoring metrics for a record without persisting anything.
// Used by the standalone scoring endpoint to preview a lead.
func (s *LeadService) Score(rec domain.RawBusinessRecord) domain.ScoreResult {
	return scoring.Score(rec)
}

// leadFromRecord shapes a business record into a scored, persistable lead.
func leadFromRecord(rec domain.RawBusinessRecord, campaignID *uint) *domain.Lead {
	lead := &domain.Lead{
		BusinessName: strings.TrimSpace(rec.Name),
		Phone:        rec.Phone,
		Email:        rec.Email,
		Website:      rec.Website,
		Address:      rec.Address,
		Rating:       rec.Rating,
		ReviewsCount: rec.ReviewsCount,
		Category:     rec.Category,
		SourceURL:    rec.SourceURL,
		Status:       domain.LeadStatusNew,
		Fingerprint:  rec.Fingerprint(),
		CampaignID:   campaignID,
	}
	lead.ApplyScore(scoring.Score(rec))
	return lead
}
