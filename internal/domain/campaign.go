package domain

import "time"

// CampaignStatus represents the lifecycle status of a campaign.
// Values include CampaignStatusActive, CampaignStatusPaused, and CampaignStatusCompleted.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign represents a lead-generation campaign and its aggregate counters.
// Counters are only mutated by the ingestion pipeline's end-of-batch commit.
type Campaign struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	SearchQuery    string         `gorm:"type:text" json:"search_query,omitempty"`
	Location       string         `gorm:"type:text" json:"location,omitempty"`
	Status         CampaignStatus `gorm:"type:text;default:active;index:idx_campaigns_status" json:"status"`
	TotalLeads     int            `gorm:"default:0" json:"total_leads"`
	NewLeads       int            `gorm:"default:0" json:"new_leads"`
	DuplicateLeads int            `gorm:"default:0" json:"duplicate_leads"`
	HotLeads       int            `gorm:"default:0" json:"hot_leads"`
	CreatedBy      *uint          `gorm:"index:idx_campaigns_created_by" json:"created_by,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName returns the database table name for Campaign.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Campaign) TableName() string {
	return "campaigns"
}

// IngestCounters holds the per-run deltas applied to a campaign in a single
// aggregate write when an ingestion run commits.
type IngestCounters struct {
	TotalLeads     int
	NewLeads       int
	DuplicateLeads int
	HotLeads       int
}
