package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type fakePayrolls struct {
	entries []models.PayrollEntry
	period  string
	err     error
}

func (f *fakePayrolls) Payrolls(_ context.Context, period string) ([]models.PayrollEntry, bool, error) {
	f.period = period
	return f.entries, false, f.err
}

func TestPayrollServiceSheet(t *testing.T) {
	var entries []models.PayrollEntry
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"p1","employeeName":"Rudi","period":"2024-05","basicSalary":1650,"allowances":0},
		{"id":"p2","employeeName":"Sari","period":"2024-05","basicSalary":"600","allowances":"n/a"}
	]`), &entries))
	source := &fakePayrolls{entries: entries}
	svc := NewPayrollService(source, nil)

	sheet, _, err := svc.Sheet(context.Background(), " 2024-05 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", source.period)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "p1", sheet.Rows[0].Entry.ID)
	assertAmount(t, "93.45", sheet.Rows[0].Output.IncomeTax)
	assertAmount(t, "0.00", sheet.Rows[1].Output.IncomeTax)
	assertAmount(t, "2250.00", sheet.Totals.GrossSalary)
	assertAmount(t, "1999.05", sheet.Totals.NetPay)
}

func TestPayrollServiceSheetEmpty(t *testing.T) {
	svc := NewPayrollService(&fakePayrolls{}, nil)

	sheet, _, err := svc.Sheet(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, sheet.Rows)
	assertAmount(t, "0.00", sheet.Totals.NetPay)
}

func TestPayrollServiceSheetError(t *testing.T) {
	svc := NewPayrollService(&fakePayrolls{err: appErrors.ErrUpstreamUnavailable}, nil)

	_, _, err := svc.Sheet(context.Background(), "2024-05")
	assert.ErrorIs(t, err, appErrors.ErrUpstreamUnavailable)
}

func TestPayrollServiceCalculate(t *testing.T) {
	svc := NewPayrollService(nil, nil)

	out := svc.Calculate(payrollInput(3000, 500))
	assertAmount(t, "3500.00", out.GrossSalary)
	assertAmount(t, "210.00", out.PensionEmployee)
	assertAmount(t, "3290.00", out.TaxableIncome)
	// 3290 * 0.20 - 302.5
	assertAmount(t, "355.50", out.IncomeTax)
	assertAmount(t, "2934.50", out.NetPay)
}
