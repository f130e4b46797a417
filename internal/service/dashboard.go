package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
)

const (
	// Funnel tracking is not wired up yet; the dashboard shows a fixed rate.
	dashboardConversionRate = 12.5

	// Estimated pipeline value of one priority-A lead, in USD.
	hotLeadValueUSD = 15000

	defaultTimelineDays = 30
)

// leadStatsStore is the slice of the lead repository the dashboard needs.
type leadStatsStore interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountByPriority(ctx context.Context) ([]repository.PriorityCount, error)
	AverageQuality(ctx context.Context) (float64, error)
	Timeline(ctx context.Context, since time.Time) ([]repository.TimelinePoint, error)
	QualityBuckets(ctx context.Context) ([]repository.QualityBucket, error)
}

// campaignStatsStore is the slice of the campaign repository the dashboard needs.
type campaignStatsStore interface {
	CountActive(ctx context.Context) (int64, error)
}

// DashboardStats is the headline-figures payload for the dashboard.
type DashboardStats struct {
	TotalLeads       int64   `json:"total_leads"`
	NewToday         int64   `json:"new_today"`
	HotLeads         int64   `json:"hot_leads"`
	ConversionRate   float64 `json:"conversion_rate"`
	RevenuePotential string  `json:"revenue_potential"`
	ActiveCampaigns  int64   `json:"active_campaigns"`
	AvgQualityScore  float64 `json:"avg_quality_score"`
}

// DashboardService aggregates lead and campaign statistics for the
// dashboard endpoints.
type DashboardService struct {
	leads     leadStatsStore
	campaigns campaignStatsStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(leads leadStatsStore, campaigns campaignStatsStore) *DashboardService {
	return &DashboardService{
		leads:     leads,
		campaigns: campaigns,
	}
}

// Stats assembles the headline figures: lead totals, today's intake, hot
// leads with their estimated pipeline value, active campaigns, and the
// average data-quality score rounded to one decimal.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	total, err := s.leads.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	newToday, err := s.leads.CountCreatedSince(ctx, startOfDayUTC(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to count today's leads: %w", err)
	}

	byPriority, err := s.leads.CountByPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by priority: %w", err)
	}
	var hot int64
	for _, pc := range byPriority {
		if pc.Priority == domain.PriorityA {
			hot = pc.Count
		}
	}

	avgQuality, err := s.leads.AverageQuality(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to average lead quality: %w", err)
	}

	active, err := s.campaigns.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active campaigns: %w", err)
	}

	return &DashboardStats{
		TotalLeads:       total,
		NewToday:         newToday,
		HotLeads:         hot,
		ConversionRate:   dashboardConversionRate,
		RevenuePotential: "$" + groupThousands(hot*hotLeadValueUSD),
		ActiveCampaigns:  active,
		AvgQualityScore:  math.Round(avgQuality*10) / 10,
	}, nil
}

// LeadsByPriority returns per-priority lead counts for the priority chart.
func (s *DashboardService) LeadsByPriority(ctx context.Context) ([]repository.PriorityCount, error) {
	return s.leads.CountByPriority(ctx)
}

// Timeline returns per-day lead creation counts for the last days days.
// Non-positive or missing day counts fall back to the default window.
func (s *DashboardService) Timeline(ctx context.Context, days int) ([]repository.TimelinePoint, error) {
	if days < 1 {
		days = defaultTimelineDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.leads.Timeline(ctx, since)
}

// QualityDistribution returns the data-quality band counts for the quality chart.
func (s *DashboardService) QualityDistribution(ctx context.Context) ([]repository.QualityBucket, error) {
	return s.leads.QualityBuckets(ctx)
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// groupThousands renders n with comma separators, "45000" -> "45,000".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
