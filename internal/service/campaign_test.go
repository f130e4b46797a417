package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

type fakeCampaignRepo struct {
	byID   map[uint]*domain.Campaign
	nextID uint
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{byID: make(map[uint]*domain.Campaign)}
}

func (f *fakeCampaignRepo) Create(ctx context.Context, campaign *domain.Campaign) error {
	f.nextID++
	campaign.ID = f.nextID
	stored := *campaign
	f.byID[campaign.ID] = &stored
	return nil
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, id uint) (*domain.Campaign, error) {
	campaign, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *campaign
	return &cp, nil
}

func (f *fakeCampaignRepo) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func TestCampaignServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and trimming", func(t *testing.T) {
		repo := newFakeCampaignRepo()
		svc := NewCampaignService(repo, testLogger())

		campaign := &domain.Campaign{Name: "  Dentists Austin  ", SearchQuery: "dentist", Location: "Austin, TX"}
		if err := svc.Create(ctx, campaign); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if campaign.ID == 0 {
			t.Error("campaign was not persisted, ID is zero")
		}
		if campaign.Name != "Dentists Austin" {
			t.Errorf("name = %q, want %q", campaign.Name, "Dentists Austin")
		}
		if campaign.Status != domain.CampaignStatusActive {
			t.Errorf("status = %q, want %q", campaign.Status, domain.CampaignStatusActive)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		repo := newFakeCampaignRepo()
		svc := NewCampaignService(repo, testLogger())

		err := svc.Create(ctx, &domain.Campaign{Name: "   "})
		if !errors.Is(err, domain.ErrEmptyCampaignName) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrEmptyCampaignName)
		}
	})

	t.Run("explicit status kept", func(t *testing.T) {
		repo := newFakeCampaignRepo()
		svc := NewCampaignService(repo, testLogger())

		campaign := &domain.Campaign{Name: "Paused run", Status: domain.CampaignStatusPaused}
		if err := svc.Create(ctx, campaign); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if campaign.Status != domain.CampaignStatusPaused {
			t.Errorf("status = %q, want %q", campaign.Status, domain.CampaignStatusPaused)
		}
	})
}

func TestCampaignServiceGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCampaignRepo()
	svc := NewCampaignService(repo, testLogger())

	campaign := &domain.Campaign{Name: "Dentists Austin"}
	if err := svc.Create(ctx, campaign); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Get(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Dentists Austin" {
		t.Errorf("name = %q, want %q", got.Name, "Dentists Austin")
	}

	if _, err := svc.Get(ctx, 9999); !errors.Is(err, domain.ErrCampaignNotFound) {
		t.Errorf("Get(9999) error = %v, want %v", err, domain.ErrCampaignNotFound)
	}
}
