package service

import "github.com/noah-isme/construction-pm-api/internal/models"

type referenceIndex struct {
	departments map[string]*models.Department
	users       map[string]*models.User
}

func newReferenceIndex(departments []models.Department, users []models.User) referenceIndex {
	idx := referenceIndex{
		departments: make(map[string]*models.Department, len(departments)),
		users:       make(map[string]*models.User, len(users)),
	}
	for i := range departments {
		d := departments[i]
		if _, exists := idx.departments[d.ID]; !exists {
			idx.departments[d.ID] = &d
		}
	}
	for i := range users {
		u := users[i]
		if _, exists := idx.users[u.ID]; !exists {
			idx.users[u.ID] = &u
		}
	}
	return idx
}

func (idx referenceIndex) department(id string) *models.Department {
	if id == "" {
		return nil
	}
	return idx.departments[id]
}

func (idx referenceIndex) user(ref *models.Ref) *models.User {
	id := models.RefID(ref)
	if id == "" {
		return nil
	}
	return idx.users[id]
}

// EnrichRequests resolves the department and user references of each request. Unknown
// references become nil; the output has one entry per input in the same order.
func EnrichRequests(requests []models.ResourceRequest, departments []models.Department, users []models.User) []models.EnrichedRequest {
	idx := newReferenceIndex(departments, users)
	out := make([]models.EnrichedRequest, 0, len(requests))
	for _, r := range requests {
		out = append(out, models.EnrichedRequest{
			ID:             r.ID,
			Title:          r.Title,
			ResourceType:   r.ResourceType,
			Quantity:       r.Quantity,
			Status:         r.Status,
			DepartmentID:   r.DepartmentID,
			Department:     idx.department(r.DepartmentID),
			ApprovedByUser: idx.user(r.ApprovedByUser),
			CheckedByUser:  idx.user(r.CheckedByUser),
			CreatedAt:      r.CreatedAt,
		})
	}
	return out
}

// EnrichApprovals resolves the previous/next departments and the users of each approval.
func EnrichApprovals(approvals []models.Approval, departments []models.Department, users []models.User) []models.EnrichedApproval {
	idx := newReferenceIndex(departments, users)
	out := make([]models.EnrichedApproval, 0, len(approvals))
	for _, a := range approvals {
		out = append(out, models.EnrichedApproval{
			ID:             a.ID,
			RequestID:      a.RequestID,
			Status:         a.Status,
			Remark:         a.Remark,
			PrevDepartment: idx.department(models.RefID(a.PrevDepartment)),
			NextDepartment: idx.department(models.RefID(a.NextDepartment)),
			ApprovedByUser: idx.user(a.ApprovedByUser),
			CheckedByUser:  idx.user(a.CheckedByUser),
			CreatedAt:      a.CreatedAt,
		})
	}
	return out
}
