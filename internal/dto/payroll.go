package dto

import "github.com/noah-isme/construction-pm-api/internal/models"

// PayrollSheetRow pairs a stored payroll entry with its computed figures.
type PayrollSheetRow struct {
	Entry  models.PayrollEntry  `json:"entry"`
	Output models.PayrollOutput `json:"output"`
}

// PayrollSheet lists every entry of a period with column totals.
type PayrollSheet struct {
	Period string               `json:"period,omitempty"`
	Rows   []PayrollSheetRow    `json:"rows"`
	Totals models.PayrollOutput `json:"totals"`
}
