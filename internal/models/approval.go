package models

// Department is reference data joined onto requests and approvals.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is reference data joined onto requests and approvals.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Ref is a bare foreign key object as sent by the backend, e.g. {"id":"u1"}.
type Ref struct {
	ID string `json:"id"`
}

// RefID returns the referenced id, or "" for a nil reference.
func RefID(r *Ref) string {
	if r == nil {
		return ""
	}
	return r.ID
}

// ResourceRequest is a request for resources raised by a department.
type ResourceRequest struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	ResourceType   string    `json:"resourceType,omitempty"`
	Quantity       Amount    `json:"quantity"`
	Status         string    `json:"status"`
	DepartmentID   string    `json:"departmentId"`
	ApprovedByUser *Ref      `json:"approvedByUser"`
	CheckedByUser  *Ref      `json:"checkedByUser"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// Approval is one step of a request moving between departments.
type Approval struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"requestId"`
	Status         string    `json:"status"`
	Remark         string    `json:"remark,omitempty"`
	PrevDepartment *Ref      `json:"prevDepartment"`
	NextDepartment *Ref      `json:"nextDepartment"`
	ApprovedByUser *Ref      `json:"approvedByUser"`
	CheckedByUser  *Ref      `json:"checkedByUser"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// EnrichedRequest is a ResourceRequest with every foreign key replaced by the referenced
// object. Unmatched keys stay nil.
type EnrichedRequest struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	ResourceType   string      `json:"resourceType,omitempty"`
	Quantity       Amount      `json:"quantity"`
	Status         string      `json:"status"`
	DepartmentID   string      `json:"departmentId"`
	Department     *Department `json:"department"`
	ApprovedByUser *User       `json:"approvedByUser"`
	CheckedByUser  *User       `json:"checkedByUser"`
	CreatedAt      Timestamp   `json:"createdAt"`
}

// EnrichedApproval is an Approval with departments and users resolved.
type EnrichedApproval struct {
	ID             string      `json:"id"`
	RequestID      string      `json:"requestId"`
	Status         string      `json:"status"`
	Remark         string      `json:"remark,omitempty"`
	PrevDepartment *Department `json:"prevDepartment"`
	NextDepartment *Department `json:"nextDepartment"`
	ApprovedByUser *User       `json:"approvedByUser"`
	CheckedByUser  *User       `json:"checkedByUser"`
	CreatedAt      Timestamp   `json:"createdAt"`
}
