package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
)

type resourceSnapshots interface {
	Sites(ctx context.Context) ([]models.Site, bool, error)
	Equipment(ctx context.Context) ([]models.Equipment, bool, error)
	Labor(ctx context.Context) ([]models.Labor, bool, error)
	Materials(ctx context.Context) ([]models.Material, bool, error)
}

// ResourceSummaryService feeds the site summary tables. Rows are recomputed from the current
// snapshots on every call.
type ResourceSummaryService struct {
	snapshots resourceSnapshots
	logger    *zap.Logger
	now       func() time.Time
}

// NewResourceSummaryService constructs the service.
func NewResourceSummaryService(snapshots resourceSnapshots, logger *zap.Logger) *ResourceSummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceSummaryService{snapshots: snapshots, logger: logger, now: time.Now}
}

// EquipmentBySite aggregates equipment per site. The bool reports whether every input came
// from cache.
func (s *ResourceSummaryService) EquipmentBySite(ctx context.Context) ([]dto.EquipmentSiteSummary, bool, error) {
	sites, sitesHit, err := s.snapshots.Sites(ctx)
	if err != nil {
		return nil, false, err
	}
	records, recordsHit, err := s.snapshots.Equipment(ctx)
	if err != nil {
		return nil, false, err
	}
	return AggregateEquipment(records, sites), sitesHit && recordsHit, nil
}

// LaborBySite aggregates workers per site.
func (s *ResourceSummaryService) LaborBySite(ctx context.Context) ([]dto.LaborSiteSummary, bool, error) {
	sites, sitesHit, err := s.snapshots.Sites(ctx)
	if err != nil {
		return nil, false, err
	}
	records, recordsHit, err := s.snapshots.Labor(ctx)
	if err != nil {
		return nil, false, err
	}
	return AggregateLabor(records, sites), sitesHit && recordsHit, nil
}

// MaterialsBySite aggregates material lines per site.
func (s *ResourceSummaryService) MaterialsBySite(ctx context.Context) ([]dto.MaterialSiteSummary, bool, error) {
	sites, sitesHit, err := s.snapshots.Sites(ctx)
	if err != nil {
		return nil, false, err
	}
	records, recordsHit, err := s.snapshots.Materials(ctx)
	if err != nil {
		return nil, false, err
	}
	return AggregateMaterials(records, sites), sitesHit && recordsHit, nil
}

// KPI sums the per-site rows of every resource type. Orphaned records are excluded, matching
// the site tables.
func (s *ResourceSummaryService) KPI(ctx context.Context) (*dto.ResourceKPIResponse, bool, error) {
	sites, sitesHit, err := s.snapshots.Sites(ctx)
	if err != nil {
		return nil, false, err
	}
	equipment, equipmentHit, err := s.snapshots.Equipment(ctx)
	if err != nil {
		return nil, false, err
	}
	labor, laborHit, err := s.snapshots.Labor(ctx)
	if err != nil {
		return nil, false, err
	}
	materials, materialsHit, err := s.snapshots.Materials(ctx)
	if err != nil {
		return nil, false, err
	}

	kpi := &dto.ResourceKPIResponse{SiteCount: len(sites), GeneratedAt: s.now().UTC()}
	active := make(map[string]struct{})
	for _, row := range AggregateEquipment(equipment, sites) {
		kpi.EquipmentTotal += row.Total
		kpi.EquipmentAvailable += row.Available
		active[row.ID] = struct{}{}
	}
	for _, row := range AggregateLabor(labor, sites) {
		kpi.LaborTotal += row.Total
		kpi.LaborAllocated += row.Allocated
		kpi.LaborActive += row.Active
		active[row.ID] = struct{}{}
	}
	for _, row := range AggregateMaterials(materials, sites) {
		kpi.MaterialTotal += row.Total
		kpi.MaterialLowStock += row.LowStock
		kpi.MaterialOutOfStock += row.OutOfStock
		active[row.ID] = struct{}{}
	}
	kpi.SitesWithResources = len(active)

	return kpi, sitesHit && equipmentHit && laborHit && materialsHit, nil
}
