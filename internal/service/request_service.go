package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/models"
)

type approvalSnapshots interface {
	Requests(ctx context.Context) ([]models.ResourceRequest, bool, error)
	Approvals(ctx context.Context) ([]models.Approval, bool, error)
	Departments(ctx context.Context) ([]models.Department, bool, error)
	Users(ctx context.Context) ([]models.User, bool, error)
}

// RequestService serves resource requests and approvals with their references resolved.
type RequestService struct {
	snapshots approvalSnapshots
	logger    *zap.Logger
}

// NewRequestService constructs the service.
func NewRequestService(snapshots approvalSnapshots, logger *zap.Logger) *RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{snapshots: snapshots, logger: logger}
}

// Requests lists enriched requests. A non-empty status keeps only matching requests
// (case-insensitive).
func (s *RequestService) Requests(ctx context.Context, status string) ([]models.EnrichedRequest, bool, error) {
	requests, requestsHit, err := s.snapshots.Requests(ctx)
	if err != nil {
		return nil, false, err
	}
	departments, users, refsHit, err := s.references(ctx)
	if err != nil {
		return nil, false, err
	}
	if status = strings.TrimSpace(status); status != "" {
		filtered := make([]models.ResourceRequest, 0, len(requests))
		for _, r := range requests {
			if strings.EqualFold(r.Status, status) {
				filtered = append(filtered, r)
			}
		}
		requests = filtered
	}
	return EnrichRequests(requests, departments, users), requestsHit && refsHit, nil
}

// Approvals lists enriched approvals, optionally filtered by status.
func (s *RequestService) Approvals(ctx context.Context, status string) ([]models.EnrichedApproval, bool, error) {
	approvals, approvalsHit, err := s.snapshots.Approvals(ctx)
	if err != nil {
		return nil, false, err
	}
	departments, users, refsHit, err := s.references(ctx)
	if err != nil {
		return nil, false, err
	}
	if status = strings.TrimSpace(status); status != "" {
		filtered := make([]models.Approval, 0, len(approvals))
		for _, a := range approvals {
			if strings.EqualFold(a.Status, status) {
				filtered = append(filtered, a)
			}
		}
		approvals = filtered
	}
	return EnrichApprovals(approvals, departments, users), approvalsHit && refsHit, nil
}

func (s *RequestService) references(ctx context.Context) ([]models.Department, []models.User, bool, error) {
	departments, departmentsHit, err := s.snapshots.Departments(ctx)
	if err != nil {
		return nil, nil, false, err
	}
	users, usersHit, err := s.snapshots.Users(ctx)
	if err != nil {
		return nil, nil, false, err
	}
	return departments, users, departmentsHit && usersHit, nil
}
