package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/middleware"
	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

type resourceSummaryService interface {
	EquipmentBySite(ctx context.Context) ([]dto.EquipmentSiteSummary, bool, error)
	LaborBySite(ctx context.Context) ([]dto.LaborSiteSummary, bool, error)
	MaterialsBySite(ctx context.Context) ([]dto.MaterialSiteSummary, bool, error)
	KPI(ctx context.Context) (*dto.ResourceKPIResponse, bool, error)
}

type resourceWriteService interface {
	CreateEquipment(ctx context.Context, req dto.CreateEquipmentRequest) (*models.Equipment, error)
	CreateLabor(ctx context.Context, req dto.CreateLaborRequest) (*models.Labor, error)
	CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (*models.Material, error)
}

// ResourceHandler serves site summaries and resource form submissions.
type ResourceHandler struct {
	summaries resourceSummaryService
	writes    resourceWriteService
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(summaries resourceSummaryService, writes resourceWriteService) *ResourceHandler {
	return &ResourceHandler{summaries: summaries, writes: writes}
}

// EquipmentSummary godoc
// @Summary Equipment availability per site
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /sites/summary/equipment [get]
func (h *ResourceHandler) EquipmentSummary(c *gin.Context) {
	start := time.Now()
	rows, hit, err := h.summaries.EquipmentBySite(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, rows, nil, middleware.ResponseMeta(c, start))
}

// LaborSummary godoc
// @Summary Labor allocation and activity per site
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sites/summary/labor [get]
func (h *ResourceHandler) LaborSummary(c *gin.Context) {
	start := time.Now()
	rows, hit, err := h.summaries.LaborBySite(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, rows, nil, middleware.ResponseMeta(c, start))
}

// MaterialSummary godoc
// @Summary Material stock levels per site
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sites/summary/materials [get]
func (h *ResourceHandler) MaterialSummary(c *gin.Context) {
	start := time.Now()
	rows, hit, err := h.summaries.MaterialsBySite(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, rows, nil, middleware.ResponseMeta(c, start))
}

// KPI godoc
// @Summary Resource totals across all sites
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources/summary [get]
func (h *ResourceHandler) KPI(c *gin.Context) {
	start := time.Now()
	kpi, hit, err := h.summaries.KPI(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, kpi, nil, middleware.ResponseMeta(c, start))
}

// CreateEquipment godoc
// @Summary Register equipment
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body dto.CreateEquipmentRequest true "Equipment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /equipment [post]
func (h *ResourceHandler) CreateEquipment(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	created, err := h.writes.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// CreateLabor godoc
// @Summary Register a worker
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body dto.CreateLaborRequest true "Labor payload"
// @Success 201 {object} response.Envelope
// @Router /labor [post]
func (h *ResourceHandler) CreateLabor(c *gin.Context) {
	var req dto.CreateLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	created, err := h.writes.CreateLabor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// CreateMaterial godoc
// @Summary Register a material line
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body dto.CreateMaterialRequest true "Material payload"
// @Success 201 {object} response.Envelope
// @Router /materials [post]
func (h *ResourceHandler) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	created, err := h.writes.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}
