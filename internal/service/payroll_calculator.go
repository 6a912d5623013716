package service

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/construction-pm-api/internal/models"
)

var (
	pensionEmployeeRate = decimal.RequireFromString("0.07")
	pensionEmployerRate = decimal.RequireFromString("0.11")
)

type taxBracket struct {
	ceiling   decimal.Decimal
	rate      decimal.Decimal
	deduction decimal.Decimal
}

func bracket(ceiling, rate, deduction string) taxBracket {
	return taxBracket{
		ceiling:   decimal.RequireFromString(ceiling),
		rate:      decimal.RequireFromString(rate),
		deduction: decimal.RequireFromString(deduction),
	}
}

// Brackets are inclusive of their ceiling. Income above the last ceiling uses topBracket.
var (
	taxBrackets = []taxBracket{
		bracket("600", "0", "0"),
		bracket("1650", "0.10", "60"),
		bracket("3200", "0.15", "142.5"),
		bracket("5250", "0.20", "302.5"),
		bracket("7800", "0.25", "565"),
		bracket("10900", "0.30", "955"),
	}
	topBracket = bracket("0", "0.35", "1500")
)

// EffectivePayrollInput returns the inputs as CalculatePayroll uses them: negative or
// out-of-range values become zero.
func EffectivePayrollInput(input models.PayrollInput) models.PayrollInput {
	return models.PayrollInput{
		BasicSalary: models.AmountOf(nonNegative(models.BoundAmount(input.BasicSalary.Decimal))),
		Allowances:  models.AmountOf(nonNegative(models.BoundAmount(input.Allowances.Decimal))),
	}
}

// CalculatePayroll derives every payroll output from the two inputs. Each step is rounded to
// cents before it feeds the next.
func CalculatePayroll(input models.PayrollInput) models.PayrollOutput {
	effective := EffectivePayrollInput(input)
	basic := effective.BasicSalary.Decimal
	allowances := effective.Allowances.Decimal

	gross := round2(basic.Add(allowances))
	pensionEmployee := round2(basic.Mul(pensionEmployeeRate))
	pensionEmployer := round2(basic.Mul(pensionEmployerRate))
	taxable := round2(gross.Sub(pensionEmployee))
	tax := IncomeTax(taxable)
	net := round2(gross.Sub(tax).Sub(pensionEmployee))

	return models.PayrollOutput{
		GrossSalary:     models.AmountOf(gross),
		PensionEmployee: models.AmountOf(pensionEmployee),
		PensionEmployer: models.AmountOf(pensionEmployer),
		TaxableIncome:   models.AmountOf(taxable),
		IncomeTax:       models.AmountOf(tax),
		NetPay:          models.AmountOf(net),
	}
}

// IncomeTax applies the bracket table to a taxable income, rounded to cents.
func IncomeTax(taxable decimal.Decimal) decimal.Decimal {
	b := topBracket
	for _, candidate := range taxBrackets {
		if taxable.LessThanOrEqual(candidate.ceiling) {
			b = candidate
			break
		}
	}
	if b.rate.IsZero() {
		return decimal.Zero
	}
	return round2(taxable.Mul(b.rate).Sub(b.deduction))
}

// SumPayroll adds outputs column by column.
func SumPayroll(outputs []models.PayrollOutput) models.PayrollOutput {
	var total models.PayrollOutput
	for _, out := range outputs {
		total.GrossSalary = models.AmountOf(total.GrossSalary.Add(out.GrossSalary.Decimal))
		total.PensionEmployee = models.AmountOf(total.PensionEmployee.Add(out.PensionEmployee.Decimal))
		total.PensionEmployer = models.AmountOf(total.PensionEmployer.Add(out.PensionEmployer.Decimal))
		total.TaxableIncome = models.AmountOf(total.TaxableIncome.Add(out.TaxableIncome.Decimal))
		total.IncomeTax = models.AmountOf(total.IncomeTax.Add(out.IncomeTax.Decimal))
		total.NetPay = models.AmountOf(total.NetPay.Add(out.NetPay.Decimal))
	}
	return total
}

// PayrollForm holds the editable payroll inputs and keeps the outputs in sync: every setter
// recomputes the whole output set.
type PayrollForm struct {
	input  models.PayrollInput
	output models.PayrollOutput
}

// NewPayrollForm returns a form with zero inputs and their computed outputs.
func NewPayrollForm() *PayrollForm {
	f := &PayrollForm{}
	f.recompute()
	return f
}

// SetBasicSalary updates the basic salary and returns the recomputed outputs.
func (f *PayrollForm) SetBasicSalary(value models.Amount) models.PayrollOutput {
	f.input.BasicSalary = value
	f.recompute()
	return f.output
}

// SetAllowances updates the allowances and returns the recomputed outputs.
func (f *PayrollForm) SetAllowances(value models.Amount) models.PayrollOutput {
	f.input.Allowances = value
	f.recompute()
	return f.output
}

// Input returns the current inputs.
func (f *PayrollForm) Input() models.PayrollInput {
	return f.input
}

// Output returns the current outputs.
func (f *PayrollForm) Output() models.PayrollOutput {
	return f.output
}

func (f *PayrollForm) recompute() {
	f.output = CalculatePayroll(f.input)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
