package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/middleware"
	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

type payrollService interface {
	Calculate(input models.PayrollInput) models.PayrollOutput
	Sheet(ctx context.Context, period string) (*dto.PayrollSheet, bool, error)
}

// PayrollHandler exposes the payroll calculator and payroll sheet.
type PayrollHandler struct {
	service payrollService
}

// NewPayrollHandler constructs the handler.
func NewPayrollHandler(service payrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

// Calculate godoc
// @Summary Compute payroll figures
// @Description Inputs may be numbers or numeric strings; anything else counts as 0.
// @Tags Payroll
// @Accept json
// @Produce json
// @Param payload body models.PayrollInput true "Payroll input"
// @Success 200 {object} response.Envelope
// @Router /payroll/calculate [post]
func (h *PayrollHandler) Calculate(c *gin.Context) {
	var input models.PayrollInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "request body must be a JSON object"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.Calculate(input), nil)
}

// Sheet godoc
// @Summary Payroll sheet for a period
// @Tags Payroll
// @Produce json
// @Param period query string false "Payroll period, e.g. 2024-05"
// @Success 200 {object} response.Envelope
// @Router /payroll [get]
func (h *PayrollHandler) Sheet(c *gin.Context) {
	start := time.Now()
	sheet, hit, err := h.service.Sheet(c.Request.Context(), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, sheet, nil, middleware.ResponseMeta(c, start))
}
