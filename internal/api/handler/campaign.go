package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atif128873806/lead-intelligence-platfor/internal/api/middleware"
	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
)

// CampaignHandler handles campaign CRUD endpoints.
type CampaignHandler struct {
	campaignService *service.CampaignService
}

// NewCampaignHandler creates a new campaign handler.
// Parameters:
//   - campaignService: campaign service instance.
// Returns:
//   - *CampaignHandler: initialized handler.
func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// CreateCampaignRequest represents the campaign creation request.
type CreateCampaignRequest struct {
	Name        string `json:"name" binding:"required"`
	SearchQuery string `json:"search_query"`
	Location    string `json:"location"`
}

// ListCampaigns handles GET /api/v1/campaigns.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	campaigns, err := h.campaignService.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list campaigns: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": campaigns,
	})
}

// CreateCampaign handles POST /api/v1/campaigns.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	campaign := &domain.Campaign{
		Name:        req.Name,
		SearchQuery: req.SearchQuery,
		Location:    req.Location,
	}
	if user := middleware.CurrentUser(c); user != nil {
		campaign.CreatedBy = &user.ID
	}

	if err := h.campaignService.Create(c.Request.Context(), campaign); err != nil {
		if errors.Is(err, domain.ErrEmptyCampaignName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Campaign name is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create campaign",
		})
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign handles GET /api/v1/campaigns/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	campaign, err := h.campaignService.Get(c.Request.Context(), uint(id))
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

	c.JSON(http.StatusOK, campaign)
}
