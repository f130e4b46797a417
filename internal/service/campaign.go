package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
)

// campaignRepo is the slice of the campaign repository the campaign
// service needs.
type campaignRepo interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id uint) (*domain.Campaign, error)
	List(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
}

// CampaignService owns campaign CRUD semantics. Aggregate counters are
// off limits here; only the ingestion pipeline writes those.
type CampaignService struct {
	repo   campaignRepo
	logger *logger.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(repo campaignRepo, log *logger.Logger) *CampaignService {
	return &CampaignService{
		repo:   repo,
		logger: log,
	}
}

// Create persists a new campaign. A missing status defaults to active.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - campaign: campaign to persist; counters must be zero.
// Returns:
//   - error: domain.ErrEmptyCampaignName or a storage error.
func (s *CampaignService) Create(ctx context.Context, campaign *domain.Campaign) error {
	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Name == "" {
		return domain.ErrEmptyCampaignName
	}
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusActive
	}
	return s.repo.Create(ctx, campaign)
}

// Get retrieves a campaign by ID.
// Returns domain.ErrCampaignNotFound when no such campaign exists.
func (s *CampaignService) Get(ctx context.Context, id uint) (*domain.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

// List retrieves campaigns with pagination, newest first.
func (s *CampaignService) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	return s.repo.List(ctx, limit, offset)
}
