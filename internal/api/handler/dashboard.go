package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
)

// DashboardHandler handles dashboard statistics endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
// Parameters:
//   - dashboardService: dashboard service instance.
// Returns:
//   - *DashboardHandler: initialized handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles GET /api/v1/dashboard/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load dashboard stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPriorityBreakdown handles GET /api/v1/dashboard/priority.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *DashboardHandler) GetPriorityBreakdown(c *gin.Context) {
	counts, err := h.dashboardService.LeadsByPriority(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load priority breakdown: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"priorities": counts,
	})
}

// GetTimeline handles GET /api/v1/dashboard/timeline.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *DashboardHandler) GetTimeline(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	points, err := h.dashboardService.Timeline(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load timeline: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timeline": points,
	})
}

// GetQualityDistribution handles GET /api/v1/dashboard/quality.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *DashboardHandler) GetQualityDistribution(c *gin.Context) {
	buckets, err := h.dashboardService.QualityDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load quality distribution: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"distribution": buckets,
	})
}
