package repository

import (
	"context"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"gorm.io/gorm"
)

// LeadFilter narrows List queries. Zero values mean "no constraint".
type LeadFilter struct {
	Priority   domain.Priority
	Status     domain.LeadStatus
	CampaignID uint
	MinScore   int
	Search     string // matches business name, email, or category
	Limit      int
	Offset     int
}

// PriorityCount pairs a priority bucket with its lead count.
type PriorityCount struct {
	Priority domain.Priority `json:"priority"`
	Count    int64           `json:"count"`
}

// QualityBucket pairs a data-quality band with its lead count.
type QualityBucket struct {
	Bucket string `json:"range" gorm:"column:bucket"`
	Count  int64  `json:"count"`
}

// TimelinePoint pairs a calendar date with the number of leads created on it.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// LeadRepository handles lead data operations.
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new LeadRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *LeadRepository: repository instance bound to db.
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - lead: lead record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// CreateBatch inserts a set of leads atomically in a single transaction.
// Either every lead is persisted or none are.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - leads: staged lead records to persist.
// Returns:
//   - error: non-nil if the transaction fails; no rows are written then.
func (r *LeadRepository) CreateBatch(ctx context.Context, leads []*domain.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(leads, 100).Error
	})
}

// GetByID retrieves a lead by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: lead ID.
// Returns:
//   - *domain.Lead: lead record if found.
//   - error: non-nil if lookup fails.
func (r *LeadRepository) GetByID(ctx context.Context, id uint) (*domain.Lead, error) {
	var lead domain.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update updates an existing lead record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - lead: lead record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

// List retrieves leads matching the filter, highest score first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filter: query constraints and pagination.
// Returns:
//   - []domain.Lead: matching lead records.
//   - int64: total match count ignoring pagination.
//   - error: non-nil if the query fails.
func (r *LeadRepository) List(ctx context.Context, filter LeadFilter) ([]domain.Lead, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Lead{})

	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CampaignID != 0 {
		query = query.Where("campaign_id = ?", filter.CampaignID)
	}
	if filter.MinScore > 0 {
		query = query.Where("ai_score >= ?", filter.MinScore)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("business_name LIKE ? OR email LIKE ? OR category LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []domain.Lead
	if err := query.
		Order("ai_score DESC").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&leads).Error; err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// ExistsBySourceURL checks if a lead with the given source identifier exists.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - sourceURL: source identifier to look up.
// Returns:
//   - bool: true if a record exists.
//   - error: non-nil if the lookup fails.
func (r *LeadRepository) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Where("source_url = ?", sourceURL).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByFingerprint checks if a lead with the given fingerprint exists.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - fingerprint: derived duplicate-detection key.
// Returns:
//   - bool: true if a record exists.
//   - error: non-nil if the lookup fails.
func (r *LeadRepository) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Where("fingerprint = ?", fingerprint).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of leads.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of lead records.
//   - error: non-nil if the query fails.
func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCreatedSince returns the number of leads created at or after the cutoff.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - since: inclusive lower bound on created_at.
// Returns:
//   - int64: number of matching lead records.
//   - error: non-nil if the query fails.
func (r *LeadRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByPriority groups lead counts by priority bucket.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []PriorityCount: per-priority lead counts.
//   - error: non-nil if the query fails.
func (r *LeadRepository) CountByPriority(ctx context.Context) ([]PriorityCount, error) {
	var counts []PriorityCount
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Order("priority").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountByStatus groups lead counts by lifecycle status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - map[domain.LeadStatus]int64: per-status lead counts.
//   - error: non-nil if the query fails.
func (r *LeadRepository) CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	rows := []struct {
		Status domain.LeadStatus
		Count  int64
	}{}
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[domain.LeadStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// AverageScore returns the mean ai_score across all leads, zero when empty.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - float64: average score or 0 with no leads.
//   - error: non-nil if the query fails.
func (r *LeadRepository) AverageScore(ctx context.Context) (float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Select("AVG(ai_score)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// AverageQuality returns the mean data_quality_score across all leads,
// zero when empty.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - float64: average data-quality score or 0 with no leads.
//   - error: non-nil if the query fails.
func (r *LeadRepository) AverageQuality(ctx context.Context) (float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).
		Select("AVG(data_quality_score)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// Timeline returns per-day lead creation counts from the cutoff onward,
// oldest day first. Days with no leads are absent from the result.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - since: inclusive lower bound on created_at.
// Returns:
//   - []TimelinePoint: per-day counts.
//   - error: non-nil if the query fails.
func (r *LeadRepository) Timeline(ctx context.Context, since time.Time) ([]TimelinePoint, error) {
	var points []TimelinePoint
	if err := r.db.WithContext(ctx).Raw(`
		SELECT DATE(created_at) AS date, COUNT(*) AS count
		FROM leads
		WHERE created_at >= ?
		GROUP BY DATE(created_at)
		ORDER BY date`, since).
		Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// QualityBuckets groups leads into data-quality bands for the dashboard.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []QualityBucket: per-band lead counts.
//   - error: non-nil if the query fails.
func (r *LeadRepository) QualityBuckets(ctx context.Context) ([]QualityBucket, error) {
	var buckets []QualityBucket
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			CASE
				WHEN data_quality_score >= 80 THEN 'High (80-100)'
				WHEN data_quality_score >= 60 THEN 'Medium (60-79)'
				WHEN data_quality_score >= 40 THEN 'Low (40-59)'
				ELSE 'Very Low (0-39)'
			END AS bucket,
			COUNT(*) AS count
		FROM leads
		GROUP BY bucket`).
		Scan(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}
