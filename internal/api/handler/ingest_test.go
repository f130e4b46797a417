package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/progress"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
)

type stubSource struct{}

func (stubSource) Name() string { return "stub" }

func (stubSource) Fetch(ctx context.Context, query, location string, maxResults int) ([]domain.RawBusinessRecord, error) {
	return nil, nil
}

type stubCampaignRepo struct {
	campaigns map[uint]*domain.Campaign
}

func (s *stubCampaignRepo) Create(ctx context.Context, campaign *domain.Campaign) error {
	return nil
}

func (s *stubCampaignRepo) GetByID(ctx context.Context, id uint) (*domain.Campaign, error) {
	if c, ok := s.campaigns[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCampaignRepo) List(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	return nil, nil
}

func (s *stubCampaignRepo) ApplyIngestCounters(ctx context.Context, id uint, counters domain.IngestCounters) error {
	return nil
}

type stubLeadStore struct{}

func (stubLeadStore) CreateBatch(ctx context.Context, leads []*domain.Lead) error { return nil }

func (stubLeadStore) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	return false, nil
}

func newIngestRouter(t *testing.T, tracker *progress.Tracker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewDefault()
	repo := &stubCampaignRepo{campaigns: map[uint]*domain.Campaign{
		1: {ID: 1, Name: "Plumbers", SearchQuery: "plumber", Location: "Austin, TX"},
	}}

	ingestService := service.NewIngestService(stubLeadStore{}, repo, tracker, nil, log)
	campaignService := service.NewCampaignService(repo, log)
	h := NewIngestHandler(ingestService, campaignService, stubSource{}, 50)

	r := gin.New()
	r.POST("/api/v1/campaigns/:id/ingest", h.StartIngest)
	r.GET("/api/v1/campaigns/:id/progress", h.GetProgress)
	r.POST("/api/v1/campaigns/:id/stop", h.StopIngest)
	return r
}

func TestGetProgressNotStarted(t *testing.T) {
	r := newIngestRouter(t, progress.NewTracker())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/42/progress", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var snap domain.IngestionProgress
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if snap.Status != domain.IngestionStatusNotStarted {
		t.Errorf("status = %q, want %q", snap.Status, domain.IngestionStatusNotStarted)
	}
}

func TestStartIngestUnknownCampaign(t *testing.T) {
	r := newIngestRouter(t, progress.NewTracker())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/99/ingest", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusNotFound, w.Body.String())
	}
}

func TestStartIngestConflict(t *testing.T) {
	tracker := progress.NewTracker()
	r := newIngestRouter(t, tracker)

	// Claim the run slot so the request collides with an in-flight run.
	if !tracker.Begin(1) {
		t.Fatal("Begin should claim a fresh slot")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/1/ingest", strings.NewReader(`{"max_results": 10}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestStartIngestInvalidMaxResults(t *testing.T) {
	r := newIngestRouter(t, progress.NewTracker())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/1/ingest", strings.NewReader(`{"max_results": 501}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestStopIngestIsBestEffort(t *testing.T) {
	r := newIngestRouter(t, progress.NewTracker())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/7/stop", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusAccepted)
	}
}
