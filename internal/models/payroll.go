package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money value. It decodes leniently: numbers and numeric strings parse, anything
// else (booleans, objects, garbage text, null) decodes to zero instead of failing the request.
// Values outside the money range also decode to zero. It always encodes as a JSON number with
// two decimals.
type Amount struct {
	decimal.Decimal
}

const (
	maxAmountDigits   = 15
	minAmountExponent = -32
	amountScale       = 8
	maxAmountText     = 64
)

// NewAmount wraps a float.
func NewAmount(value float64) Amount {
	return Amount{Decimal: BoundAmount(decimal.NewFromFloat(value))}
}

// BoundAmount keeps d inside the money range: more than 15 integer digits or an absurdly small
// exponent yields zero, and precision beyond 8 decimals is rounded away. Only the exponent
// and coefficient length are inspected, so oversized inputs are never expanded.
func BoundAmount(d decimal.Decimal) decimal.Decimal {
	exp := d.Exponent()
	if exp < minAmountExponent || exp > maxAmountDigits {
		return decimal.Zero
	}
	if d.NumDigits()+int(exp) > maxAmountDigits {
		return decimal.Zero
	}
	if exp < -amountScale {
		return d.Round(amountScale)
	}
	return d
}

// AmountOf wraps an existing decimal.
func AmountOf(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

// UnmarshalJSON implements json.Unmarshaler and never returns an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = decimal.Zero
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return nil
	}
	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}
	if len(text) > maxAmountText {
		return nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil
	}
	a.Decimal = BoundAmount(d)
	return nil
}

// PayrollInput holds the two user-entered payroll fields.
type PayrollInput struct {
	BasicSalary Amount `json:"basic_salary"`
	Allowances  Amount `json:"allowances"`
}

// PayrollOutput holds the derived payroll figures, each rounded to cents.
type PayrollOutput struct {
	GrossSalary     Amount `json:"gross_salary"`
	PensionEmployee Amount `json:"pension_employee"`
	PensionEmployer Amount `json:"pension_employer"`
	TaxableIncome   Amount `json:"taxable_income"`
	IncomeTax       Amount `json:"income_tax"`
	NetPay          Amount `json:"net_pay"`
}

// PayrollEntry is a payroll line stored by the backend for one worker and period.
type PayrollEntry struct {
	ID           string `json:"id"`
	LaborID      string `json:"laborId,omitempty"`
	EmployeeName string `json:"employeeName"`
	Position     string `json:"position,omitempty"`
	Period       string `json:"period,omitempty"`
	BasicSalary  Amount `json:"basicSalary"`
	Allowances   Amount `json:"allowances"`
}

// ParseAmount applies the lenient decoding rules of Amount to a raw form or query value.
func ParseAmount(raw string) Amount {
	var a Amount
	quoted, _ := json.Marshal(raw)
	_ = a.UnmarshalJSON(quoted)
	return a
}
