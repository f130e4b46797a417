package domain

import "time"

// IngestionStatus represents the state of a campaign's ingestion run.
// Values include IngestionStatusNotStarted, IngestionStatusRunning,
// IngestionStatusCompleted, IngestionStatusFailed, and IngestionStatusStopped.
type IngestionStatus string

const (
	IngestionStatusNotStarted IngestionStatus = "not_started"
	IngestionStatusRunning    IngestionStatus = "running"
	IngestionStatusCompleted  IngestionStatus = "completed"
	IngestionStatusFailed     IngestionStatus = "failed"
	IngestionStatusStopped    IngestionStatus = "stopped"
)

// IngestionProgress is the in-memory snapshot of a campaign's current or most
// recent ingestion run. It is not persisted; a process restart resets all
// progress to the not_started zero value.
type IngestionProgress struct {
	CampaignID   uint            `json:"campaign_id"`
	Status       IngestionStatus `json:"status"`
	Progress     int             `json:"progress"`
	LeadsFound   int             `json:"leads_found"`
	LeadsCreated int             `json:"leads_created"`
	Duplicates   int             `json:"duplicates"`
	Error        string          `json:"error,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Terminal reports whether the status is a final state for a run.
// Parameters: none.
// Returns:
//   - bool: true for completed, failed, or stopped.
func (s IngestionStatus) Terminal() bool {
	switch s {
	case IngestionStatusCompleted, IngestionStatusFailed, IngestionStatusStopped:
		return true
	}
	return false
}
