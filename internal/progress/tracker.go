package progress

import (
	"sync"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

// Tracker is the in-process store of per-campaign ingestion progress. It is
// injected into the pipeline and owned by its lifecycle. Nothing here is
// durable: a restart resets every campaign to not_started, which callers
// must treat as authoritative.
//
// A stop request is a cooperative flag; the running pipeline observes it
// between records and finishes with the stopped status.
type Tracker struct {
	mu    sync.RWMutex
	runs  map[uint]domain.IngestionProgress
	stops map[uint]bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		runs:  make(map[uint]domain.IngestionProgress),
		stops: make(map[uint]bool),
	}
}

// Get returns a snapshot of the campaign's progress. Campaigns without any
// recorded run report the not_started zero value.
func (t *Tracker) Get(campaignID uint) domain.IngestionProgress {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if p, ok := t.runs[campaignID]; ok {
		return p
	}
	return domain.IngestionProgress{
		CampaignID: campaignID,
		Status:     domain.IngestionStatusNotStarted,
	}
}

// Begin atomically claims a run slot for the campaign. It reports false when
// a run is already in flight, which is how the single-run-per-campaign rule
// is enforced. A successful claim clears any stale stop request.
func (t *Tracker) Begin(campaignID uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cur, ok := t.runs[campaignID]; ok && cur.Status == domain.IngestionStatusRunning {
		return false
	}
	t.runs[campaignID] = domain.IngestionProgress{
		CampaignID: campaignID,
		Status:     domain.IngestionStatusRunning,
		UpdatedAt:  time.Now(),
	}
	delete(t.stops, campaignID)
	return true
}

// Update mutates the campaign's entry under the tracker lock. The callback
// receives the current snapshot to modify in place.
func (t *Tracker) Update(campaignID uint, fn func(*domain.IngestionProgress)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.runs[campaignID]
	if !ok {
		p = domain.IngestionProgress{
			CampaignID: campaignID,
			Status:     domain.IngestionStatusNotStarted,
		}
	}
	fn(&p)
	p.UpdatedAt = time.Now()
	t.runs[campaignID] = p
}

// SetPercent raises the campaign's progress percentage. Progress within a
// run is monotonic, so a lower value is ignored.
func (t *Tracker) SetPercent(campaignID uint, percent int) {
	t.Update(campaignID, func(p *domain.IngestionProgress) {
		if percent > p.Progress {
			p.Progress = percent
		}
	})
}

// Finish records the terminal status for the campaign's run and clears any
// pending stop request. The error message is kept verbatim for failed runs.
func (t *Tracker) Finish(campaignID uint, status domain.IngestionStatus, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.runs[campaignID]
	if !ok {
		p = domain.IngestionProgress{CampaignID: campaignID}
	}
	p.Status = status
	p.Error = errMsg
	if status == domain.IngestionStatusCompleted {
		p.Progress = 100
	}
	p.UpdatedAt = time.Now()
	t.runs[campaignID] = p
	delete(t.stops, campaignID)
}

// RequestStop flags the campaign's running ingestion to halt at the next
// record boundary. Best effort: without an active run it does nothing.
func (t *Tracker) RequestStop(campaignID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cur, ok := t.runs[campaignID]; ok && cur.Status == domain.IngestionStatusRunning {
		t.stops[campaignID] = true
	}
}

// StopRequested reports whether a stop has been requested for the campaign.
func (t *Tracker) StopRequested(campaignID uint) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stops[campaignID]
}
