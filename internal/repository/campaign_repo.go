package repository

import (
	"context"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"gorm.io/gorm"
)

// CampaignRepository handles campaign data operations.
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new CampaignRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *CampaignRepository: repository instance bound to db.
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create inserts a new campaign record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - campaign: campaign record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

// GetByID retrieves a campaign by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: campaign ID.
// Returns:
//   - *domain.Campaign: campaign record if found.
//   - error: non-nil if lookup fails.
func (r *CampaignRepository) GetByID(ctx context.Context, id uint) (*domain.Campaign, error) {
	var campaign domain.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List retrieves campaigns with pagination, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - limit: maximum number of records to return.
//   - offset: number of records to skip.
// Returns:
//   - []domain.Campaign: matching campaign records.
//   - error: non-nil if the query fails.
func (r *CampaignRepository) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CountActive returns the number of campaigns in the active status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of active campaigns.
//   - error: non-nil if the query fails.
func (r *CampaignRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Campaign{}).
		Where("status = ?", domain.CampaignStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ApplyIngestCounters increments the campaign aggregates in one UPDATE.
// This is the single end-of-run commit point for counters; per-record
// writes never touch the campaign row.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: campaign ID.
//   - counters: per-run deltas to add.
// Returns:
//   - error: non-nil if the update fails.
func (r *CampaignRepository) ApplyIngestCounters(ctx context.Context, id uint, counters domain.IngestCounters) error {
	return r.db.WithContext(ctx).Model(&domain.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_leads":     gorm.Expr("total_leads + ?", counters.TotalLeads),
			"new_leads":       gorm.Expr("new_leads + ?", counters.NewLeads),
			"duplicate_leads": gorm.Expr("duplicate_leads + ?", counters.DuplicateLeads),
			"hot_leads":       gorm.Expr("hot_leads + ?", counters.HotLeads),
		}).Error
}
