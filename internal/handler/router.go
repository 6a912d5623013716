package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/middleware"
)

// Routes groups the handlers mounted under the API prefix.
type Routes struct {
	Resources     *ResourceHandler
	Payroll       *PayrollHandler
	Requests      *RequestHandler
	Projects      *ProjectHandler
	Announcements *AnnouncementHandler
	Exports       *ExportHandler
	Metrics       *MetricsHandler

	AnnouncementsEnabled bool
	ExportsEnabled       bool
}

// Register mounts ops endpoints at the root and the gateway API under prefix.
func Register(router gin.IRouter, prefix string, routes Routes) {
	if routes.Metrics != nil {
		router.GET("/health", routes.Metrics.Health)
		router.GET("/ready", routes.Metrics.Ready)
		router.GET("/metrics", routes.Metrics.Prometheus)
	}

	api := router.Group(prefix)
	api.Use(middleware.WithResponseMeta(), middleware.ForwardAuthorization())

	if routes.Metrics != nil {
		api.GET("/system/metrics", routes.Metrics.System)
	}

	if h := routes.Resources; h != nil {
		api.GET("/sites/summary/equipment", h.EquipmentSummary)
		api.GET("/sites/summary/labor", h.LaborSummary)
		api.GET("/sites/summary/materials", h.MaterialSummary)
		api.GET("/resources/summary", h.KPI)
		api.POST("/equipment", h.CreateEquipment)
		api.POST("/labor", h.CreateLabor)
		api.POST("/materials", h.CreateMaterial)
	}

	if h := routes.Payroll; h != nil {
		api.GET("/payroll", h.Sheet)
		api.POST("/payroll/calculate", h.Calculate)
	}

	if h := routes.Requests; h != nil {
		api.GET("/requests", h.Requests)
		api.GET("/approvals", h.Approvals)
	}

	if h := routes.Projects; h != nil {
		api.GET("/projects", h.List)
	}

	// Disabled features keep their routes so callers get a FEATURE_DISABLED envelope.
	announcements := api.Group("/announcements", middleware.RequireFeature(routes.AnnouncementsEnabled && routes.Announcements != nil, "announcements"))
	announcements.GET("", routes.Announcements.List)
	announcements.POST("", routes.Announcements.Create)
	announcements.POST("/:id/read", routes.Announcements.MarkRead)
	announcements.DELETE("/:id", routes.Announcements.Delete)

	exports := api.Group("/exports", middleware.RequireFeature(routes.ExportsEnabled && routes.Exports != nil, "exports"))
	exports.GET("/:dataset", routes.Exports.Download)
}
