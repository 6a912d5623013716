package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/middleware"
	"github.com/noah-isme/construction-pm-api/internal/models"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

type requestService interface {
	Requests(ctx context.Context, status string) ([]models.EnrichedRequest, bool, error)
	Approvals(ctx context.Context, status string) ([]models.EnrichedApproval, bool, error)
}

// RequestHandler lists resource requests and approvals with references resolved.
type RequestHandler struct {
	service requestService
}

// NewRequestHandler constructs the handler.
func NewRequestHandler(service requestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Requests godoc
// @Summary List resource requests
// @Tags Requests
// @Produce json
// @Param status query string false "Keep only requests with this status"
// @Success 200 {object} response.Envelope
// @Router /requests [get]
func (h *RequestHandler) Requests(c *gin.Context) {
	start := time.Now()
	rows, hit, err := h.service.Requests(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, rows, nil, middleware.ResponseMeta(c, start))
}

// Approvals godoc
// @Summary List approvals
// @Tags Requests
// @Produce json
// @Param status query string false "Keep only approvals with this status"
// @Success 200 {object} response.Envelope
// @Router /approvals [get]
func (h *RequestHandler) Approvals(c *gin.Context) {
	start := time.Now()
	rows, hit, err := h.service.Approvals(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, rows, nil, middleware.ResponseMeta(c, start))
}
