package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
	"github.com/atif128873806/lead-intelligence-platfor/internal/repository"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
)

// LeadHandler handles lead CRUD and scoring endpoints.
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler.
// Parameters:
//   - leadService: lead service instance.
// Returns:
//   - *LeadHandler: initialized handler.
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// CreateLeadRequest represents the manual lead creation request.
type CreateLeadRequest struct {
	Name         string   `json:"name" binding:"required"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Website      string   `json:"website"`
	Address      string   `json:"address"`
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviews_count"`
	Category     string   `json:"category"`
	SourceURL    string   `json:"source_url"`
	CampaignID   *uint    `json:"campaign_id"`
}

// record shapes the request body into the scoring engine's input type.
func (r CreateLeadRequest) record() domain.RawBusinessRecord {
	return domain.RawBusinessRecord{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Website:      r.Website,
		Address:      r.Address,
		Rating:       r.Rating,
		ReviewsCount: r.ReviewsCount,
		Category:     r.Category,
		SourceURL:    r.SourceURL,
	}
}

// UpdateLeadRequest represents a partial lead update. Absent fields are
// left unchanged.
type UpdateLeadRequest struct {
	Status     *domain.LeadStatus `json:"status"`
	Notes      *string            `json:"notes"`
	AssignedTo *string            `json:"assigned_to"`
}

// ListLeads handles GET /api/v1/leads.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *LeadHandler) ListLeads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	campaignID, _ := strconv.Atoi(c.Query("campaign_id"))
	minScore, _ := strconv.Atoi(c.Query("min_score"))

	filter := repository.LeadFilter{
		Priority:   domain.Priority(c.Query("priority")),
		Status:     domain.LeadStatus(c.Query("status")),
		CampaignID: uint(campaignID),
		MinScore:   minScore,
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	}

	leads, total, err := h.leadService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list leads: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":  leads,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateLead handles POST /api/v1/leads.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), req.record(), req.CampaignID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyBusinessName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Business name is required",
			})
		case errors.Is(err, domain.ErrDuplicateLead):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Lead already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create lead",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// GetLead handles GET /api/v1/leads/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lead ID",
		})
		return
	}

	lead, err := h.leadService.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lead not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load lead",
		})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PATCH /api/v1/leads/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lead ID",
		})
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), uint(id), service.LeadUpdate{
		Status:     req.Status,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLeadNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lead not found",
			})
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid lead status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update lead",
			})
		}
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ScoreLead handles POST /api/v1/leads/score. It scores a record without
// persisting anything, so sales reps can preview a lead before saving it.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *LeadHandler) ScoreLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.leadService.Score(req.record()))
}
