package domain

import "time"

// Priority represents the sales priority bucket of a lead.
// Values include PriorityA, PriorityB, and PriorityC.
type Priority string

const (
	PriorityA Priority = "A"
	PriorityB Priority = "B"
	PriorityC Priority = "C"
)

// LeadStatus represents the lifecycle status of a lead.
// Values include LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
// LeadStatusConverted, and LeadStatusRejected.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusRejected  LeadStatus = "rejected"
)

// Valid reports whether the status is one of the known lifecycle values.
// Parameters: none.
// Returns:
//   - bool: true if the status is a recognized value.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusRejected:
		return true
	}
	return false
}

// Lead represents a scored, qualified business lead.
// Fields include business contact data, scoring metrics, and lifecycle state.
type Lead struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	BusinessName          string     `gorm:"type:text;not null;index:idx_leads_name" json:"business_name"`
	Phone                 string     `gorm:"type:text" json:"phone,omitempty"`
	Email                 string     `gorm:"type:text;index:idx_leads_email" json:"email,omitempty"`
	Website               string     `gorm:"type:text" json:"website,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	Rating                *float64   `json:"rating,omitempty"`
	ReviewsCount          *int       `json:"reviews_count,omitempty"`
	Category              string     `gorm:"type:text;index:idx_leads_category" json:"category,omitempty"`
	SourceURL             string     `gorm:"type:text;uniqueIndex:idx_leads_source_url,where:source_url <> ''" json:"source_url,omitempty"`
	AIScore               int        `gorm:"default:0;index:idx_leads_ai_score" json:"ai_score"`
	Priority              Priority   `gorm:"type:text;default:C;index:idx_leads_priority" json:"priority"`
	ConversionProbability float64    `gorm:"default:0" json:"conversion_probability"`
	DataQualityScore      int        `gorm:"default:0" json:"data_quality_score"`
	RecommendedAction     string     `gorm:"type:text" json:"recommended_action,omitempty"`
	EstimatedRevenue      string     `gorm:"type:text" json:"estimated_revenue,omitempty"`
	Status                LeadStatus `gorm:"type:text;default:new;index:idx_leads_status" json:"status"`
	Fingerprint           string     `gorm:"type:text;uniqueIndex:idx_leads_fingerprint,where:fingerprint <> ''" json:"fingerprint,omitempty"`
	CampaignID            *uint      `gorm:"index:idx_leads_campaign" json:"campaign_id,omitempty"`
	AssignedTo            string     `gorm:"type:text" json:"assigned_to,omitempty"`
	Notes                 string     `gorm:"type:text" json:"notes,omitempty"`
	LastContactedAt       *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TableName returns the database table name for Lead.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Lead) TableName() string {
	return "leads"
}

// ApplyScore copies scoring metrics onto the lead.
// Parameters:
//   - score: scoring result to apply.
// Returns: none.
func (l *Lead) ApplyScore(score ScoreResult) {
	l.AIScore = score.AIScore
	l.Priority = score.Priority
	l.ConversionProbability = score.ConversionProbability
	l.DataQualityScore = score.DataQualityScore
	l.RecommendedAction = score.RecommendedAction
	l.EstimatedRevenue = score.EstimatedRevenue
}
