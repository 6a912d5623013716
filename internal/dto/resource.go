package dto

// CreateEquipmentRequest is the equipment form submission forwarded to the backend.
type CreateEquipmentRequest struct {
	Name     string  `json:"name" validate:"required"`
	Type     string  `json:"type,omitempty"`
	SiteID   string  `json:"siteId" validate:"required"`
	Status   string  `json:"status" validate:"required,equipment_status"`
	Rate     float64 `json:"rate,omitempty" validate:"gte=0"`
	RateUnit string  `json:"rateUnit,omitempty"`
}

// CreateLaborRequest is the worker form submission.
type CreateLaborRequest struct {
	FullName     string  `json:"fullName" validate:"required"`
	Trade        string  `json:"trade,omitempty"`
	SiteID       string  `json:"siteId" validate:"required"`
	Status       string  `json:"status" validate:"required,labor_allocation"`
	ActiveStatus string  `json:"activeStatus" validate:"required,labor_activity"`
	DailyRate    float64 `json:"dailyRate,omitempty" validate:"gte=0"`
}

// CreateMaterialRequest is the material form submission.
type CreateMaterialRequest struct {
	Name      string  `json:"name" validate:"required"`
	SiteID    string  `json:"siteId" validate:"required"`
	Status    string  `json:"status" validate:"required,material_status"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	Unit      string  `json:"unit,omitempty"`
	UnitPrice float64 `json:"unitPrice,omitempty" validate:"gte=0"`
}

// CreateAnnouncementRequest describes the announcement create payload.
type CreateAnnouncementRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Message   string `json:"message" validate:"required"`
	Priority  string `json:"priority" validate:"omitempty,priority"`
	CreatedBy string `json:"created_by"`
}
