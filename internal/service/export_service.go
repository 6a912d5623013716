package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
	"github.com/noah-isme/construction-pm-api/pkg/export"
)

// ExportDataset names a downloadable table.
type ExportDataset string

const (
	ExportEquipmentSummary ExportDataset = "equipment-summary"
	ExportLaborSummary     ExportDataset = "labor-summary"
	ExportMaterialSummary  ExportDataset = "material-summary"
	ExportPayroll          ExportDataset = "payroll"
	ExportRequests         ExportDataset = "requests"
	ExportApprovals        ExportDataset = "approvals"
)

const (
	missingName       = "-"
	missingDepartment = "N/A"
	exportDateLayout  = "2006-01-02"
)

type summarySource interface {
	EquipmentBySite(ctx context.Context) ([]dto.EquipmentSiteSummary, bool, error)
	LaborBySite(ctx context.Context) ([]dto.LaborSiteSummary, bool, error)
	MaterialsBySite(ctx context.Context) ([]dto.MaterialSiteSummary, bool, error)
}

type payrollSheetSource interface {
	Sheet(ctx context.Context, period string) (*dto.PayrollSheet, bool, error)
}

type enrichedSource interface {
	Requests(ctx context.Context, status string) ([]models.EnrichedRequest, bool, error)
	Approvals(ctx context.Context, status string) ([]models.EnrichedApproval, bool, error)
}

// ExportParams narrows the exported rows.
type ExportParams struct {
	Period string
	Status string
}

// ExportResult is a rendered file ready to stream.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the gateway's tables as CSV, PDF or XLSX downloads.
type ExportService struct {
	summaries summarySource
	payroll   payrollSheetSource
	records   enrichedSource
	renderers map[export.Format]export.Renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService. A nil renderer map uses the default set.
func NewExportService(summaries summarySource, payroll payrollSheetSource, records enrichedSource, renderers map[export.Format]export.Renderer, logger *zap.Logger) *ExportService {
	if renderers == nil {
		renderers = export.Renderers()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{summaries: summaries, payroll: payroll, records: records, renderers: renderers, logger: logger, now: time.Now}
}

// Generate builds the dataset and renders it in the requested format.
func (s *ExportService) Generate(ctx context.Context, dataset ExportDataset, format string, params ExportParams) (*ExportResult, error) {
	f := export.Format(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = export.FormatCSV
	}
	renderer, ok := s.renderers[f]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}

	data, err := s.buildDataset(ctx, dataset, params)
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(data)
	if err != nil {
		s.logger.Error("export render failed", zap.String("dataset", string(dataset)), zap.String("format", string(f)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportResult{
		Filename:    s.buildFilename(dataset, params, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

func (s *ExportService) buildFilename(dataset ExportDataset, params ExportParams, ext string) string {
	timestamp := s.now().UTC().Format("20060102_150405")
	if params.Period != "" {
		return fmt.Sprintf("%s_%s_%s.%s", dataset, sanitizeFilename(params.Period), timestamp, ext)
	}
	return fmt.Sprintf("%s_%s.%s", dataset, timestamp, ext)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func (s *ExportService) buildDataset(ctx context.Context, dataset ExportDataset, params ExportParams) (export.Dataset, error) {
	switch dataset {
	case ExportEquipmentSummary:
		return s.buildEquipmentDataset(ctx)
	case ExportLaborSummary:
		return s.buildLaborDataset(ctx)
	case ExportMaterialSummary:
		return s.buildMaterialDataset(ctx)
	case ExportPayroll:
		return s.buildPayrollDataset(ctx, params.Period)
	case ExportRequests:
		return s.buildRequestDataset(ctx, params.Status)
	case ExportApprovals:
		return s.buildApprovalDataset(ctx, params.Status)
	default:
		return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown export dataset %q", dataset))
	}
}

func (s *ExportService) buildEquipmentDataset(ctx context.Context) (export.Dataset, error) {
	rows, _, err := s.summaries.EquipmentBySite(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	data := export.Dataset{
		Title:   "Equipment by Site",
		Headers: []string{"Site", "Total", "Available", "Unavailable", "Other"},
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Site":        row.Site,
			"Total":       strconv.Itoa(row.Total),
			"Available":   strconv.Itoa(row.Available),
			"Unavailable": strconv.Itoa(row.Unavailable),
			"Other":       strconv.Itoa(row.Other),
		})
	}
	return data, nil
}

func (s *ExportService) buildLaborDataset(ctx context.Context) (export.Dataset, error) {
	rows, _, err := s.summaries.LaborBySite(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	data := export.Dataset{
		Title: "Labor by Site",
		Headers: []string{"Site", "Total", "Allocated", "Unallocated", "On Leave", "Other Allocation",
			"Active", "Inactive", "Other Activity"},
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Site":             row.Site,
			"Total":            strconv.Itoa(row.Total),
			"Allocated":        strconv.Itoa(row.Allocated),
			"Unallocated":      strconv.Itoa(row.Unallocated),
			"On Leave":         strconv.Itoa(row.OnLeave),
			"Other Allocation": strconv.Itoa(row.OtherAllocation),
			"Active":           strconv.Itoa(row.Active),
			"Inactive":         strconv.Itoa(row.InActive),
			"Other Activity":   strconv.Itoa(row.OtherActivity),
		})
	}
	return data, nil
}

func (s *ExportService) buildMaterialDataset(ctx context.Context) (export.Dataset, error) {
	rows, _, err := s.summaries.MaterialsBySite(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	data := export.Dataset{
		Title:   "Materials by Site",
		Headers: []string{"Site", "Total", "Available", "Low Stock", "Out of Stock", "Other"},
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Site":         row.Site,
			"Total":        strconv.Itoa(row.Total),
			"Available":    strconv.Itoa(row.Available),
			"Low Stock":    strconv.Itoa(row.LowStock),
			"Out of Stock": strconv.Itoa(row.OutOfStock),
			"Other":        strconv.Itoa(row.Other),
		})
	}
	return data, nil
}

func (s *ExportService) buildPayrollDataset(ctx context.Context, period string) (export.Dataset, error) {
	sheet, _, err := s.payroll.Sheet(ctx, period)
	if err != nil {
		return export.Dataset{}, err
	}
	title := "Payroll"
	if sheet.Period != "" {
		title = fmt.Sprintf("Payroll %s", sheet.Period)
	}
	data := export.Dataset{
		Title: title,
		Headers: []string{"Employee", "Period", "Basic Salary", "Allowances", "Gross Salary",
			"Pension (Employee)", "Pension (Employer)", "Taxable Income", "Income Tax", "Net Pay"},
	}
	for _, row := range sheet.Rows {
		record := payrollRecord(row.Output)
		record["Employee"] = placeholder(row.Entry.EmployeeName, missingName)
		record["Period"] = row.Entry.Period
		input := EffectivePayrollInput(models.PayrollInput{BasicSalary: row.Entry.BasicSalary, Allowances: row.Entry.Allowances})
		record["Basic Salary"] = input.BasicSalary.StringFixed(2)
		record["Allowances"] = input.Allowances.StringFixed(2)
		data.Rows = append(data.Rows, record)
	}
	totals := payrollRecord(sheet.Totals)
	totals["Employee"] = "TOTAL"
	data.Rows = append(data.Rows, totals)
	return data, nil
}

func payrollRecord(out models.PayrollOutput) map[string]string {
	return map[string]string{
		"Gross Salary":       out.GrossSalary.StringFixed(2),
		"Pension (Employee)": out.PensionEmployee.StringFixed(2),
		"Pension (Employer)": out.PensionEmployer.StringFixed(2),
		"Taxable Income":     out.TaxableIncome.StringFixed(2),
		"Income Tax":         out.IncomeTax.StringFixed(2),
		"Net Pay":            out.NetPay.StringFixed(2),
	}
}

func (s *ExportService) buildRequestDataset(ctx context.Context, status string) (export.Dataset, error) {
	requests, _, err := s.records.Requests(ctx, status)
	if err != nil {
		return export.Dataset{}, err
	}
	data := export.Dataset{
		Title:   "Resource Requests",
		Headers: []string{"Title", "Type", "Quantity", "Status", "Department", "Approved By", "Checked By", "Created At"},
	}
	for _, r := range requests {
		data.Rows = append(data.Rows, map[string]string{
			"Title":       r.Title,
			"Type":        r.ResourceType,
			"Quantity":    r.Quantity.String(),
			"Status":      r.Status,
			"Department":  departmentName(r.Department),
			"Approved By": userName(r.ApprovedByUser),
			"Checked By":  userName(r.CheckedByUser),
			"Created At":  formatDate(r.CreatedAt.Time),
		})
	}
	return data, nil
}

func (s *ExportService) buildApprovalDataset(ctx context.Context, status string) (export.Dataset, error) {
	approvals, _, err := s.records.Approvals(ctx, status)
	if err != nil {
		return export.Dataset{}, err
	}
	data := export.Dataset{
		Title:   "Approvals",
		Headers: []string{"Request", "Status", "From Department", "To Department", "Approved By", "Checked By", "Remark", "Created At"},
	}
	for _, a := range approvals {
		data.Rows = append(data.Rows, map[string]string{
			"Request":         a.RequestID,
			"Status":          a.Status,
			"From Department": departmentName(a.PrevDepartment),
			"To Department":   departmentName(a.NextDepartment),
			"Approved By":     userName(a.ApprovedByUser),
			"Checked By":      userName(a.CheckedByUser),
			"Remark":          a.Remark,
			"Created At":      formatDate(a.CreatedAt.Time),
		})
	}
	return data, nil
}

func departmentName(d *models.Department) string {
	if d == nil {
		return missingDepartment
	}
	return placeholder(d.Name, missingDepartment)
}

func userName(u *models.User) string {
	if u == nil {
		return missingName
	}
	return placeholder(u.FullName, missingName)
}

func placeholder(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(exportDateLayout)
}
