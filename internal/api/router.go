package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atif128873806/lead-intelligence-platfor/internal/api/handler"
	"github.com/atif128873806/lead-intelligence-platfor/internal/api/middleware"
	"github.com/atif128873806/lead-intelligence-platfor/internal/config"
	"github.com/atif128873806/lead-intelligence-platfor/internal/logger"
	"github.com/atif128873806/lead-intelligence-platfor/internal/service"
	"github.com/atif128873806/lead-intelligence-platfor/internal/source"
)

// Services bundles the service instances the router wires into handlers.
type Services struct {
	Auth      *service.AuthService
	Lead      *service.LeadService
	Campaign  *service.CampaignService
	Dashboard *service.DashboardService
	Ingest    *service.IngestService
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	cfg *config.Config,
	log *logger.Logger,
	db *gorm.DB,
	svcs Services,
	src source.Source,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cfg.Server.CORS))

	// Create handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(svcs.Auth)
	leadHandler := handler.NewLeadHandler(svcs.Lead)
	campaignHandler := handler.NewCampaignHandler(svcs.Campaign)
	dashboardHandler := handler.NewDashboardHandler(svcs.Dashboard)
	ingestHandler := handler.NewIngestHandler(svcs.Ingest, svcs.Campaign, src, cfg.Ingest.DefaultMaxResults)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// Auth endpoints are open except the profile lookup
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.Auth(svcs.Auth), authHandler.Me)
	}

	// Everything else requires a valid token
	protected := v1.Group("")
	protected.Use(middleware.Auth(svcs.Auth))
	{
		// Leads
		protected.GET("/leads", leadHandler.ListLeads)
		protected.POST("/leads", leadHandler.CreateLead)
		protected.POST("/leads/score", leadHandler.ScoreLead)
		protected.GET("/leads/:id", leadHandler.GetLead)
		protected.PATCH("/leads/:id", leadHandler.UpdateLead)

		// Campaigns and ingestion
		protected.GET("/campaigns", campaignHandler.ListCampaigns)
		protected.POST("/campaigns", campaignHandler.CreateCampaign)
		protected.GET("/campaigns/:id", campaignHandler.GetCampaign)
		protected.POST("/campaigns/:id/ingest", ingestHandler.StartIngest)
		protected.GET("/campaigns/:id/progress", ingestHandler.GetProgress)
		protected.POST("/campaigns/:id/stop", ingestHandler.StopIngest)

		// Dashboard
		protected.GET("/dashboard/stats", dashboardHandler.GetStats)
		protected.GET("/dashboard/priority", dashboardHandler.GetPriorityBreakdown)
		protected.GET("/dashboard/timeline", dashboardHandler.GetTimeline)
		protected.GET("/dashboard/quality", dashboardHandler.GetQualityDistribution)
	}

	return r
}
