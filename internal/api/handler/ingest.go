package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source"
)

// IngestHandler handles campaign ingestion endpoints: starting a run,
// polling its progress, and requesting a stop.
type IngestHandler struct {
	ingestService   *service.IngestService
	campaignService *service.CampaignService
	source          source.Source
	defaultMax      int
}

// NewIngestHandler creates a new ingest handler.
// Parameters:
//   - ingestService: ingest service instance.
//   - campaignService: campaign service, used to default the search terms.
//   - src: business-data source runs will fetch from.
//   - defaultMax: max_results used when the request omits it.
// Returns:
//   - *IngestHandler: initialized handler.
func NewIngestHandler(
	ingestService *service.IngestService,
	campaignService *service.CampaignService,
	src source.Source,
	defaultMax int,
) *IngestHandler {
	return &IngestHandler{
		ingestService:   ingestService,
		campaignService: campaignService,
		source:          src,
		defaultMax:      defaultMax,
	}
}

// StartIngestRequest represents the start-ingestion request. Every field
// is optional; query and location default to the campaign's own values.
type StartIngestRequest struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	MaxResults int    `json:"max_results"`
}

// StartIngest handles POST /api/v1/campaigns/:id/ingest. On success the
// run continues in the background and the response is 202 Accepted with
// the initial progress snapshot.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *IngestHandler) StartIngest(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	// The body is optional; an omitted body means "use the campaign's defaults".
	var req StartIngestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request: " + err.Error(),
			})
			return
		}
	}

	campaign, err := h.campaignService.Get(c.Request.Context(), uint(campaignID))
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load campaign",
		})
		return
	}

	if req.Query == "" {
		req.Query = campaign.SearchQuery
	}
	if req.Location == "" {
		req.Location = campaign.Location
	}
	if req.MaxResults == 0 {
		req.MaxResults = h.defaultMax
	}

	err = h.ingestService.StartIngestion(c.Request.Context(), h.source, service.IngestRequest{
		CampaignID: campaign.ID,
		Query:      req.Query,
		Location:   req.Location,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMaxResults):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, domain.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		case errors.Is(err, domain.ErrIngestionRunning):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ingestion already running for this campaign",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start ingestion",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Ingestion started",
		"progress": h.ingestService.GetProgress(campaign.ID),
	})
}

// GetProgress handles GET /api/v1/campaigns/:id/progress. It never fails
// for a well-formed ID; campaigns with no recorded run report not_started.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *IngestHandler) GetProgress(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	c.JSON(http.StatusOK, h.ingestService.GetProgress(uint(campaignID)))
}

// StopIngest handles POST /api/v1/campaigns/:id/stop. Stopping is a
// cooperative request observed between records, so the response is 202
// rather than a guarantee.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *IngestHandler) StopIngest(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	h.ingestService.RequestStop(uint(campaignID))

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Stop requested",
		"progress": h.ingestService.GetProgress(uint(campaignID)),
	})
}
