package progress

import (
	"sync"
	"testing"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

// TestGetUnknownCampaign verifies unknown campaigns report not_started.
func TestGetUnknownCampaign(t *testing.T) {
	tracker := NewTracker()

	got := tracker.Get(42)
	if got.Status != domain.IngestionStatusNotStarted {
		t.Errorf("Status = %s, want not_started", got.Status)
	}
	if got.CampaignID != 42 {
		t.Errorf("CampaignID = %d, want 42", got.CampaignID)
	}
	if got.Progress != 0 || got.LeadsFound != 0 || got.Error != "" {
		t.Errorf("expected zero-value progress, got %+v", got)
	}
}

// TestBeginClaimsSingleRun verifies only one run can be claimed per campaign
// until it reaches a terminal state.
func TestBeginClaimsSingleRun(t *testing.T) {
	tracker := NewTracker()

	if !tracker.Begin(1) {
		t.Fatal("first Begin should succeed")
	}
	if tracker.Begin(1) {
		t.Error("second Begin should fail while running")
	}
	if !tracker.Begin(2) {
		t.Error("Begin for a different campaign should succeed")
	}

	tracker.Finish(1, domain.IngestionStatusCompleted, "")
	if !tracker.Begin(1) {
		t.Error("Begin should succeed after the previous run completed")
	}
}

// TestBeginConcurrent verifies exactly one winner when many goroutines race
// to start the same campaign.
func TestBeginConcurrent(t *testing.T) {
	tracker := NewTracker()

	const attempts = 32
	var wg sync.WaitGroup
	wins := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- tracker.Begin(7)
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("winners = %d, want exactly 1", winners)
	}
}

// TestSetPercentMonotonic verifies progress never decreases within a run.
func TestSetPercentMonotonic(t *testing.T) {
	tracker := NewTracker()
	tracker.Begin(3)

	tracker.SetPercent(3, 50)
	tracker.SetPercent(3, 30)
	if got := tracker.Get(3).Progress; got != 50 {
		t.Errorf("Progress = %d, want 50 after lower update", got)
	}

	tracker.SetPercent(3, 90)
	if got := tracker.Get(3).Progress; got != 90 {
		t.Errorf("Progress = %d, want 90", got)
	}
}

// TestFinishStates verifies terminal bookkeeping for each outcome.
func TestFinishStates(t *testing.T) {
	testCases := []struct {
		name         string
		status       domain.IngestionStatus
		errMsg       string
		wantProgress int
	}{
		{name: "completed pins progress to 100", status: domain.IngestionStatusCompleted, wantProgress: 100},
		{name: "failed keeps error verbatim", status: domain.IngestionStatusFailed, errMsg: "places: 502 Bad Gateway"},
		{name: "stopped keeps partial progress", status: domain.IngestionStatusStopped},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := NewTracker()
			tracker.Begin(5)
			tracker.SetPercent(5, 60)

			tracker.Finish(5, tc.status, tc.errMsg)

			got := tracker.Get(5)
			if got.Status != tc.status {
				t.Errorf("Status = %s, want %s", got.Status, tc.status)
			}
			if got.Error != tc.errMsg {
				t.Errorf("Error = %q, want %q", got.Error, tc.errMsg)
			}
			if tc.wantProgress > 0 && got.Progress != tc.wantProgress {
				t.Errorf("Progress = %d, want %d", got.Progress, tc.wantProgress)
			}
			if tc.wantProgress == 0 && got.Progress != 60 {
				t.Errorf("Progress = %d, want 60 preserved", got.Progress)
			}
		})
	}
}

// TestStopRequestLifecycle verifies the cooperative stop flag semantics.
func TestStopRequestLifecycle(t *testing.T) {
	tracker := NewTracker()

	// No active run: request is a no-op.
	tracker.RequestStop(9)
	if tracker.StopRequested(9) {
		t.Error("stop should not register without an active run")
	}

	tracker.Begin(9)
	tracker.RequestStop(9)
	if !tracker.StopRequested(9) {
		t.Error("stop should register while running")
	}

	tracker.Finish(9, domain.IngestionStatusStopped, "")
	if tracker.StopRequested(9) {
		t.Error("Finish should clear the stop flag")
	}

	// A fresh run must not inherit a stale flag.
	tracker.Begin(9)
	if tracker.StopRequested(9) {
		t.Error("new run should start without a stop flag")
	}
}

// TestUpdateCounters verifies counter mutation through the Update callback.
func TestUpdateCounters(t *testing.T) {
	tracker := NewTracker()
	tracker.Begin(4)

	tracker.Update(4, func(p *domain.IngestionProgress) {
		p.LeadsFound = 20
		p.LeadsCreated = 15
		p.Duplicates = 5
	})

	got := tracker.Get(4)
	if got.LeadsFound != 20 || got.LeadsCreated != 15 || got.Duplicates != 5 {
		t.Errorf("counters = %d/%d/%d, want 20/15/5", got.LeadsFound, got.LeadsCreated, got.Duplicates)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}
