package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
)

type fakeLeadRepo struct {
	leads        map[uint]*domain.Lead
	nextID       uint
	sourceURLs   map[string]bool
	fingerprints map[string]bool
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{
		leads:        make(map[uint]*domain.Lead),
		sourceURLs:   make(map[string]bool),
		fingerprints: make(map[string]bool),
	}
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	f.nextID++
	lead.ID = f.nextID
	stored := *lead
	f.leads[lead.ID] = &stored
	if lead.SourceURL != "" {
		f.sourceURLs[lead.SourceURL] = true
	}
	if lead.Fingerprint != "" {
		f.fingerprints[lead.Fingerprint] = true
	}
	return nil
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id uint) (*domain.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *lead
	return &cp, nil
}

func (f *fakeLeadRepo) Update(ctx context.Context, lead *domain.Lead) error {
	if _, ok := f.leads[lead.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *lead
	f.leads[lead.ID] = &stored
	return nil
}

func (f *fakeLeadRepo) List(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, int64, error) {
	out := make([]domain.Lead, 0, len(f.leads))
	for _, lead := range f.leads {
		out = append(out, *lead)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeadRepo) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	return f.sourceURLs[sourceURL], nil
}

func (f *fakeLeadRepo) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	return f.fingerprints[fingerprint], nil
}

func TestLeadServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("scores and persists", func(t *testing.T) {
		repo := newFakeLeadRepo()
		svc := NewLeadService(repo, testLogger())

		campaignID := uint(4)
		lead, err := svc.Create(ctx, hotRecord("smile-dental"), &campaignID)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if lead.ID == 0 {
			t.Error("lead was not persisted, ID is zero")
		}
		if lead.Status != domain.LeadStatusNew {
			t.Errorf("status = %q, want %q", lead.Status, domain.LeadStatusNew)
		}
		if lead.AIScore != 100 {
			t.Errorf("ai_score = %d, want 100", lead.AIScore)
		}
		if lead.Priority != domain.PriorityA {
			t.Errorf("priority = %q, want %q", lead.Priority, domain.PriorityA)
		}
		if lead.RecommendedAction == "" {
			t.Error("recommended_action is empty")
		}
		if lead.Fingerprint == "" {
			t.Error("fingerprint is empty")
		}
		if lead.CampaignID == nil || *lead.CampaignID != 4 {
			t.Errorf("campaign_id = %v, want 4", lead.CampaignID)
		}
	})

	t.Run("trims the business name", func(t *testing.T) {
		repo := newFakeLeadRepo()
		svc := NewLeadService(repo, testLogger())

		lead, err := svc.Create(ctx, domain.RawBusinessRecord{Name: "  Corner Cafe  "}, nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if lead.BusinessName != "Corner Cafe" {
			t.Errorf("business_name = %q, want %q", lead.BusinessName, "Corner Cafe")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		repo := newFakeLeadRepo()
		svc := NewLeadService(repo, testLogger())

		_, err := svc.Create(ctx, domain.RawBusinessRecord{Name: "   "}, nil)
		if !errors.Is(err, domain.ErrEmptyBusinessName) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrEmptyBusinessName)
		}
	})

	t.Run("rejects duplicate source url", func(t *testing.T) {
		repo := newFakeLeadRepo()
		svc := NewLeadService(repo, testLogger())

		rec := plainRecord("Corner Cafe", "https://maps.example.com/corner")
		if _, err := svc.Create(ctx, rec, nil); err != nil {
			t.Fatalf("first Create() error = %v", err)
		}

		_, err := svc.Create(ctx, plainRecord("Different Name", "https://maps.example.com/corner"), nil)
		if !errors.Is(err, domain.ErrDuplicateLead) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrDuplicateLead)
		}
	})

	t.Run("rejects duplicate fingerprint without source url", func(t *testing.T) {
		repo := newFakeLeadRepo()
		svc := NewLeadService(repo, testLogger())

		if _, err := svc.Create(ctx, domain.RawBusinessRecord{Name: "Corner Cafe"}, nil); err != nil {
			t.Fatalf("first Create() error = %v", err)
		}

		_, err := svc.Create(ctx, domain.RawBusinessRecord{Name: "corner cafe"}, nil)
		if !errors.Is(err, domain.ErrDuplicateLead) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrDuplicateLead)
		}
	})
}

func TestLeadServiceGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, testLogger())

	created, err := svc.Create(ctx, plainRecord("Corner Cafe", "https://maps.example.com/corner"), nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.BusinessName != "Corner Cafe" {
		t.Errorf("business_name = %q, want %q", got.BusinessName, "Corner Cafe")
	}

	if _, err := svc.Get(ctx, 9999); !errors.Is(err, domain.ErrLeadNotFound) {
		t.Errorf("Get(9999) error = %v, want %v", err, domain.ErrLeadNotFound)
	}
}

func TestLeadServiceUpdate(t *testing.T) {
	ctx := context.Background()

	newLead := func(t *testing.T) (*fakeLeadRepo, *LeadService, *domain.Lead) {
		t.Helper()
		repo := newFakeLeadRepo()
		svc := NewLeadService(repo, testLogger())
		lead, err := svc.Create(ctx, plainRecord("Corner Cafe", "https://maps.example.com/corner"), nil)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return repo, svc, lead
	}

	t.Run("contacted transition stamps last_contacted_at", func(t *testing.T) {
		_, svc, lead := newLead(t)

		status := domain.LeadStatusContacted
		updated, err := svc.Update(ctx, lead.ID, LeadUpdate{Status: &status})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Status != domain.LeadStatusContacted {
			t.Errorf("status = %q, want %q", updated.Status, domain.LeadStatusContacted)
		}
		if updated.LastContactedAt == nil {
			t.Error("last_contacted_at not stamped on contacted transition")
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		repo, svc, lead := newLead(t)

		status := domain.LeadStatus("bogus")
		if _, err := svc.Update(ctx, lead.ID, LeadUpdate{Status: &status}); !errors.Is(err, domain.ErrInvalidStatus) {
			t.Fatalf("Update() error = %v, want %v", err, domain.ErrInvalidStatus)
		}

		stored, _ := repo.GetByID(ctx, lead.ID)
		if stored.Status != domain.LeadStatusNew {
			t.Errorf("stored status = %q, want untouched %q", stored.Status, domain.LeadStatusNew)
		}
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		_, svc, lead := newLead(t)

		notes := "left voicemail"
		updated, err := svc.Update(ctx, lead.ID, LeadUpdate{Notes: &notes})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Notes != "left voicemail" {
			t.Errorf("notes = %q, want %q", updated.Notes, "left voicemail")
		}
		if updated.Status != domain.LeadStatusNew {
			t.Errorf("status = %q, want untouched %q", updated.Status, domain.LeadStatusNew)
		}
		if updated.LastContactedAt != nil {
			t.Error("last_contacted_at stamped without a contacted transition")
		}

		assignee := "maria"
		updated, err = svc.Update(ctx, lead.ID, LeadUpdate{AssignedTo: &assignee})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.AssignedTo != "maria" {
			t.Errorf("assigned_to = %q, want %q", updated.AssignedTo, "maria")
		}
		if updated.Notes != "left voicemail" {
			t.Errorf("notes = %q, want preserved %q", updated.Notes, "left voicemail")
		}
	})

	t.Run("unknown lead", func(t *testing.T) {
		_, svc, _ := newLead(t)

		notes := "nobody home"
		if _, err := svc.Update(ctx, 9999, LeadUpdate{Notes: &notes}); !errors.Is(err, domain.ErrLeadNotFound) {
			t.Errorf("Update(9999) error = %v, want %v", err, domain.ErrLeadNotFound)
		}
	})
}
