package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
)

type payrollSnapshots interface {
	Payrolls(ctx context.Context, period string) ([]models.PayrollEntry, bool, error)
}

// PayrollService exposes the payroll calculator and the per-period payroll sheet.
type PayrollService struct {
	snapshots payrollSnapshots
	logger    *zap.Logger
}

// NewPayrollService constructs the service.
func NewPayrollService(snapshots payrollSnapshots, logger *zap.Logger) *PayrollService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PayrollService{snapshots: snapshots, logger: logger}
}

// Calculate runs the calculator on a single input.
func (s *PayrollService) Calculate(input models.PayrollInput) models.PayrollOutput {
	return CalculatePayroll(input)
}

// Sheet computes the output of every stored entry of a period, in backend order, plus column
// totals.
func (s *PayrollService) Sheet(ctx context.Context, period string) (*dto.PayrollSheet, bool, error) {
	period = strings.TrimSpace(period)
	entries, hit, err := s.snapshots.Payrolls(ctx, period)
	if err != nil {
		return nil, false, err
	}

	rows := make([]dto.PayrollSheetRow, 0, len(entries))
	outputs := make([]models.PayrollOutput, 0, len(entries))
	for _, entry := range entries {
		out := CalculatePayroll(models.PayrollInput{BasicSalary: entry.BasicSalary, Allowances: entry.Allowances})
		rows = append(rows, dto.PayrollSheetRow{Entry: entry, Output: out})
		outputs = append(outputs, out)
	}

	return &dto.PayrollSheet{Period: period, Rows: rows, Totals: SumPayroll(outputs)}, hit, nil
}
