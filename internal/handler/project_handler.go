package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/middleware"
	"github.com/noah-isme/construction-pm-api/internal/models"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

type projectService interface {
	List(ctx context.Context) ([]models.Project, bool, error)
}

// ProjectHandler lists projects.
type ProjectHandler struct {
	service projectService
}

// NewProjectHandler constructs the handler.
func NewProjectHandler(service projectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List godoc
// @Summary List projects with their site
// @Tags Projects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, hit, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, projects, nil, middleware.ExtractMeta(c))
}
