package service

import (
	"context"

	"github.com/atif128873806/lead-intelligence-platfor/internal/auth"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
)

// Demo credentials provisioned by the seeder for local environments.
const (
	demoAdminEmail    = "admin@example.com"
	demoAdminPassword = "password123"
)

// SeedResult reports what the seeder did.
type SeedResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	LeadsCreated int    `json:"leads_created,omitempty"`
}

// SeedService provisions a demo account, a demo campaign, and a handful of
// scored leads so a fresh install has something to look at.
type SeedService struct {
	users     userStore
	leads     leadStore
	campaigns campaignRepo
	logger    *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(users userStore, leads leadStore, campaigns campaignRepo, log *logger.Logger) *SeedService {
	return &SeedService{
		users:     users,
		leads:     leads,
		campaigns: campaigns,
		logger:    log,
	}
}

// log returns a logger from context if available, otherwise returns the service logger
func (s *SeedService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// SeedDemo creates the demo admin, campaign, and leads. Safe to call more
// than once; an existing demo account makes it a no-op.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *SeedResult: outcome including the demo credentials.
//   - error: non-nil if any write fails.
func (s *SeedService) SeedDemo(ctx context.Context) (*SeedResult, error) {
	exists, err := s.users.ExistsByEmail(ctx, demoAdminEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return &SeedResult{
			Status:   "already_exists",
			Message:  "Demo user already exists",
			Email:    demoAdminEmail,
			Password: demoAdminPassword,
		}, nil
	}

	hash, err := auth.HashPassword(demoAdminPassword)
	if err != nil {
		return nil, err
	}
	admin := &domain.User{
		Email:            demoAdminEmail,
		HashedPassword:   hash,
		FullName:         "Demo Admin",
		Role:             "admin",
		IsActive:         true,
		LeadsAssigned:    45,
		LeadsContacted:   38,
		DealsClosed:      12,
		RevenueGenerated: 145000,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, err
	}

	records := demoRecords()
	leads := make([]*domain.Lead, 0, len(records))
	counters := domain.IngestCounters{}
	for _, rec := range records {
		lead := leadFromRecord(rec, nil)
		counters.TotalLeads++
		counters.NewLeads++
		if lead.Priority == domain.PriorityA {
			counters.HotLeads++
		}
		leads = append(leads, lead)
	}

	campaign := &domain.Campaign{
		Name:           "Q1 2024 Lead Generation",
		SearchQuery:    "tech companies",
		Status:         domain.CampaignStatusActive,
		TotalLeads:     counters.TotalLeads,
		NewLeads:       counters.NewLeads,
		DuplicateLeads: counters.DuplicateLeads,
		HotLeads:       counters.HotLeads,
		CreatedBy:      &admin.ID,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}

	for _, lead := range leads {
		lead.CampaignID = &campaign.ID
	}
	if err := s.leads.CreateBatch(ctx, leads); err != nil {
		return nil, err
	}

	s.log(ctx).WithField(logger.FieldCount, len(leads)).Info("Database seeded with demo data")

	return &SeedResult{
		Status:       "seeded",
		Message:      "Database seeded with demo data",
		Email:        demoAdminEmail,
		Password:     demoAdminPassword,
		LeadsCreated: len(leads),
	}, nil
}

func demoRecords() []domain.RawBusinessRecord {
	return []domain.RawBusinessRecord{
		{
			Name:         "Tech Solutions Inc",
			Phone:        "+1 (555) 123-4567",
			Email:        "contact@techsolutions.com",
			Website:      "https://techsolutions.com",
			Address:      "123 Tech Street, San Francisco, CA",
			Rating:       floatPtr(4.8),
			ReviewsCount: intPtr(245),
			Category:     "Software Development",
			SourceURL:    "https://maps.google.com/?cid=1",
		},
		{
			Name:         "Digital Marketing Pro",
			Phone:        "+1 (555) 234-5678",
			Email:        "hello@digitalmarketingpro.com",
			Website:      "https://digitalmarketingpro.com",
			Address:      "456 Marketing Ave, New York, NY",
			Rating:       floatPtr(4.6),
			ReviewsCount: intPtr(189),
			Category:     "Marketing Agency",
			SourceURL:    "https://maps.google.com/?cid=2",
		},
		{
			Name:         "Cloud Services Plus",
			Phone:        "+1 (555) 345-6789",
			Website:      "https://cloudservicesplus.com",
			Address:      "789 Cloud Blvd, Seattle, WA",
			Rating:       floatPtr(4.9),
			ReviewsCount: intPtr(312),
			Category:     "Cloud Computing",
			SourceURL:    "https://maps.google.com/?cid=3",
		},
		{
			Name:         "E-commerce Experts",
			Phone:        "+1 (555) 456-7890",
			Email:        "support@ecommerceexperts.com",
			Address:      "321 Commerce St, Austin, TX",
			Rating:       floatPtr(4.3),
			ReviewsCount: intPtr(87),
			Category:     "E-commerce",
			SourceURL:    "https://maps.google.com/?cid=4",
		},
		{
			Name:         "Data Analytics Corp",
			Email:        "info@dataanalytics.com",
			Website:      "https://dataanalytics.com",
			Address:      "555 Data Drive, Boston, MA",
			Rating:       floatPtr(4.7),
			ReviewsCount: intPtr(156),
			Category:     "Data Analytics",
			SourceURL:    "https://maps.google.com/?cid=5",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
