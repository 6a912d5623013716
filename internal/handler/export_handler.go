package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/service"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

type exportService interface {
	Generate(ctx context.Context, dataset service.ExportDataset, format string, params service.ExportParams) (*service.ExportResult, error)
}

// ExportHandler streams table exports.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Download godoc
// @Summary Download a table export
// @Tags Exports
// @Produce octet-stream
// @Param dataset path string true "equipment-summary, labor-summary, material-summary, payroll, requests or approvals"
// @Param format query string false "csv (default), pdf or xlsx"
// @Param period query string false "Payroll period"
// @Param status query string false "Request/approval status filter"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exports/{dataset} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	params := service.ExportParams{Period: c.Query("period"), Status: c.Query("status")}
	result, err := h.service.Generate(c.Request.Context(), service.ExportDataset(c.Param("dataset")), c.Query("format"), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Payload)
}
