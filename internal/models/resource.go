package models

// ResourceKind names a backend resource collection. Values double as snapshot cache keys.
type ResourceKind string

const (
	ResourceSites       ResourceKind = "sites"
	ResourceEquipment   ResourceKind = "equipment"
	ResourceLabor       ResourceKind = "labor"
	ResourceMaterials   ResourceKind = "materials"
	ResourceDepartments ResourceKind = "departments"
	ResourceUsers       ResourceKind = "users"
	ResourceRequests    ResourceKind = "requests"
	ResourceApprovals   ResourceKind = "approvals"
	ResourceProjects    ResourceKind = "projects"
	ResourcePayrolls    ResourceKind = "payrolls"
)

// Path returns the backend collection path.
func (k ResourceKind) Path() string {
	return "/" + string(k)
}

// EquipmentStatus is the availability of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "Available"
	EquipmentUnavailable EquipmentStatus = "Unavailable"
)

// LaborAllocation is whether a worker is assigned to work.
type LaborAllocation string

const (
	LaborAllocated   LaborAllocation = "Allocated"
	LaborUnallocated LaborAllocation = "Unallocated"
	LaborOnLeave     LaborAllocation = "OnLeave"
)

// LaborActivity is the employment activity flag, tracked independently of allocation.
type LaborActivity string

const (
	LaborActive   LaborActivity = "Active"
	LaborInActive LaborActivity = "InActive"
)

// MaterialStatus is the stock level of a material line.
type MaterialStatus string

const (
	MaterialAvailable  MaterialStatus = "Available"
	MaterialLowStock   MaterialStatus = "LowStock"
	MaterialOutOfStock MaterialStatus = "OutOfStock"
)

// Equipment is a fetched equipment record.
type Equipment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type,omitempty"`
	SiteID    string          `json:"siteId"`
	Status    EquipmentStatus `json:"status"`
	Rate      Amount          `json:"rate"`
	RateUnit  string          `json:"rateUnit,omitempty"`
	CreatedAt Timestamp       `json:"createdAt"`
}

// Labor is a fetched worker record. Status is the allocation axis, ActiveStatus the activity axis.
type Labor struct {
	ID           string          `json:"id"`
	FullName     string          `json:"fullName"`
	Trade        string          `json:"trade,omitempty"`
	SiteID       string          `json:"siteId"`
	Status       LaborAllocation `json:"status"`
	ActiveStatus LaborActivity   `json:"activeStatus"`
	DailyRate    Amount          `json:"dailyRate"`
	CreatedAt    Timestamp       `json:"createdAt"`
}

// Material is a fetched material line.
type Material struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SiteID    string         `json:"siteId"`
	Status    MaterialStatus `json:"status"`
	Quantity  Amount         `json:"quantity"`
	Unit      string         `json:"unit,omitempty"`
	UnitPrice Amount         `json:"unitPrice"`
	CreatedAt Timestamp      `json:"createdAt"`
}
