package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type fakeApprovalSnapshots struct {
	requests    []models.ResourceRequest
	approvals   []models.Approval
	departments []models.Department
	users       []models.User
	usersErr    error
	hit         bool
}

func (f *fakeApprovalSnapshots) Requests(context.Context) ([]models.ResourceRequest, bool, error) {
	return f.requests, f.hit, nil
}

func (f *fakeApprovalSnapshots) Approvals(context.Context) ([]models.Approval, bool, error) {
	return f.approvals, f.hit, nil
}

func (f *fakeApprovalSnapshots) Departments(context.Context) ([]models.Department, bool, error) {
	return f.departments, f.hit, nil
}

func (f *fakeApprovalSnapshots) Users(context.Context) ([]models.User, bool, error) {
	return f.users, f.hit, f.usersErr
}

func TestRequestServiceFiltersBeforeEnrichment(t *testing.T) {
	snaps := &fakeApprovalSnapshots{
		requests: []models.ResourceRequest{
			{ID: "r1", Status: "Pending", DepartmentID: "d1"},
			{ID: "r2", Status: "Approved", DepartmentID: "d2"},
			{ID: "r3", Status: "pending", DepartmentID: "d9"},
		},
		departments: testDepartments(),
		users:       testUsers(),
		hit:         true,
	}
	svc := NewRequestService(snaps, nil)

	out, hit, err := svc.Requests(context.Background(), "PENDING")
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, out, 2)
	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "Ops", out[0].Department.Name)
	assert.Equal(t, "r3", out[1].ID)
	assert.Nil(t, out[1].Department)

	all, _, err := svc.Requests(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRequestServiceApprovals(t *testing.T) {
	snaps := &fakeApprovalSnapshots{
		approvals: []models.Approval{
			{ID: "a1", Status: "Forwarded", PrevDepartment: &models.Ref{ID: "d1"}, NextDepartment: &models.Ref{ID: "d2"}},
			{ID: "a2", Status: "Rejected", CheckedByUser: &models.Ref{ID: "u1"}},
		},
		departments: testDepartments(),
		users:       testUsers(),
	}
	svc := NewRequestService(snaps, nil)

	out, hit, err := svc.Approvals(context.Background(), "rejected")
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayu Lestari", out[0].CheckedByUser.FullName)
}

func TestRequestServiceReferenceFailure(t *testing.T) {
	snaps := &fakeApprovalSnapshots{usersErr: appErrors.ErrUpstream}
	svc := NewRequestService(snaps, nil)

	_, _, err := svc.Approvals(context.Background(), "")
	assert.ErrorIs(t, err, appErrors.ErrUpstream)
}
