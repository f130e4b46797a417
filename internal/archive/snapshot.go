package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

const snapshotContentType = "application/json"

// RunSnapshot is the archived record of one ingestion run: the request,
// the outcome counters, and the raw records as fetched before scoring.
// Archived snapshots can be replayed through the localfile source.
type RunSnapshot struct {
	CampaignID   uint                       `json:"campaign_id"`
	RunID        string                     `json:"run_id"`
	Source       string                     `json:"source"`
	Query        string                     `json:"query"`
	Location     string                     `json:"location,omitempty"`
	StartedAt    time.Time                  `json:"started_at"`
	FinishedAt   time.Time                  `json:"finished_at"`
	Status       string                     `json:"status"`
	LeadsFound   int                        `json:"leads_found"`
	LeadsCreated int                        `json:"leads_created"`
	Duplicates   int                        `json:"duplicates"`
	Records      []domain.RawBusinessRecord `json:"records"`
}

// Archiver persists run snapshots to object storage
type Archiver struct {
	store ObjectStore
}

// NewArchiver creates a new archiver on top of an object store
func NewArchiver(store ObjectStore) *Archiver {
	return &Archiver{store: store}
}

// SnapshotKey returns the object key for a run snapshot.
// Layout: campaigns/<campaignID>/runs/<runID>.json
func SnapshotKey(campaignID uint, runID string) string {
	return fmt.Sprintf("campaigns/%d/runs/%s.json", campaignID, runID)
}

// SaveSnapshot uploads a run snapshot.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - snap: snapshot to persist.
// Returns:
//   - string: object key the snapshot was stored under.
//   - error: non-nil if marshaling or upload fails.
func (a *Archiver) SaveSnapshot(ctx context.Context, snap *RunSnapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := SnapshotKey(snap.CampaignID, snap.RunID)
	if err := a.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), snapshotContentType); err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return key, nil
}

// LoadSnapshot downloads and decodes a run snapshot.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - campaignID: campaign the run belonged to.
//   - runID: run identifier.
// Returns:
//   - *RunSnapshot: decoded snapshot.
//   - error: non-nil if download or decoding fails.
func (a *Archiver) LoadSnapshot(ctx context.Context, campaignID uint, runID string) (*RunSnapshot, error) {
	body, err := a.store.Download(ctx, SnapshotKey(campaignID, runID))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap RunSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return &snap, nil
}
