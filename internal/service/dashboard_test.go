package service

import (
	"context"
	"testing"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
)

type fakeLeadStats struct {
	total      int64
	newToday   int64
	byPriority []repository.PriorityCount
	avgQuality float64
	timeline   []repository.TimelinePoint
	buckets    []repository.QualityBucket
	lastSince  time.Time
}

func (f *fakeLeadStats) Count(ctx context.Context) (int64, error) { return f.total, nil }

func (f *fakeLeadStats) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return f.newToday, nil
}

func (f *fakeLeadStats) CountByPriority(ctx context.Context) ([]repository.PriorityCount, error) {
	return f.byPriority, nil
}

func (f *fakeLeadStats) AverageQuality(ctx context.Context) (float64, error) {
	return f.avgQuality, nil
}

func (f *fakeLeadStats) Timeline(ctx context.Context, since time.Time) ([]repository.TimelinePoint, error) {
	f.lastSince = since
	return f.timeline, nil
}

func (f *fakeLeadStats) QualityBuckets(ctx context.Context) ([]repository.QualityBucket, error) {
	return f.buckets, nil
}

type fakeCampaignStats struct {
	active int64
}

func (f *fakeCampaignStats) CountActive(ctx context.Context) (int64, error) {
	return f.active, nil
}

func TestDashboardStats(t *testing.T) {
	leads := &fakeLeadStats{
		total:    42,
		newToday: 5,
		byPriority: []repository.PriorityCount{
			{Priority: domain.PriorityA, Count: 3},
			{Priority: domain.PriorityB, Count: 10},
			{Priority: domain.PriorityC, Count: 29},
		},
		avgQuality: 72.34,
	}
	svc := NewDashboardService(leads, &fakeCampaignStats{active: 2})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.TotalLeads != 42 {
		t.Errorf("total_leads = %d, want 42", stats.TotalLeads)
	}
	if stats.NewToday != 5 {
		t.Errorf("new_today = %d, want 5", stats.NewToday)
	}
	if stats.HotLeads != 3 {
		t.Errorf("hot_leads = %d, want 3", stats.HotLeads)
	}
	if stats.ConversionRate != 12.5 {
		t.Errorf("conversion_rate = %v, want 12.5", stats.ConversionRate)
	}
	if stats.RevenuePotential != "$45,000" {
		t.Errorf("revenue_potential = %q, want %q", stats.RevenuePotential, "$45,000")
	}
	if stats.ActiveCampaigns != 2 {
		t.Errorf("active_campaigns = %d, want 2", stats.ActiveCampaigns)
	}
	if stats.AvgQualityScore != 72.3 {
		t.Errorf("avg_quality_score = %v, want 72.3", stats.AvgQualityScore)
	}
}

func TestDashboardStatsWithoutHotLeads(t *testing.T) {
	leads := &fakeLeadStats{
		byPriority: []repository.PriorityCount{
			{Priority: domain.PriorityC, Count: 7},
		},
	}
	svc := NewDashboardService(leads, &fakeCampaignStats{})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.HotLeads != 0 {
		t.Errorf("hot_leads = %d, want 0", stats.HotLeads)
	}
	if stats.RevenuePotential != "$0" {
		t.Errorf("revenue_potential = %q, want %q", stats.RevenuePotential, "$0")
	}
}

func TestDashboardTimelineWindow(t *testing.T) {
	testCases := []struct {
		name     string
		days     int
		wantDays int
	}{
		{name: "explicit window", days: 7, wantDays: 7},
		{name: "zero falls back to default", days: 0, wantDays: 30},
		{name: "negative falls back to default", days: -3, wantDays: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leads := &fakeLeadStats{}
			svc := NewDashboardService(leads, &fakeCampaignStats{})

			if _, err := svc.Timeline(context.Background(), tc.days); err != nil {
				t.Fatalf("Timeline() error = %v", err)
			}

			wantSince := time.Now().UTC().AddDate(0, 0, -tc.wantDays)
			diff := leads.lastSince.Sub(wantSince)
			if diff < -time.Minute || diff > time.Minute {
				t.Errorf("since = %v, want about %v", leads.lastSince, wantSince)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	testCases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{15000, "15,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
	}

	for _, tc := range testCases {
		if got := groupThousands(tc.n); got != tc.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
