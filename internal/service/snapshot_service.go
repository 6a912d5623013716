package service

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/models"
)

const snapshotKeyPrefix = "snapshot:"

type snapshotSource interface {
	Fetch(ctx context.Context, kind models.ResourceKind, query url.Values, dest interface{}) error
}

// SnapshotService is the data-fetching layer: it loads whole backend collections and caches
// them as immutable snapshots. Derived data is never cached here.
type SnapshotService struct {
	source snapshotSource
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

// NewSnapshotService constructs the service. cache may be nil.
func NewSnapshotService(source snapshotSource, cache *CacheService, ttl time.Duration, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{source: source, cache: cache, ttl: ttl, logger: logger}
}

// SnapshotKey builds the cache key of a collection fetched with the given query.
func SnapshotKey(kind models.ResourceKind, query url.Values) string {
	key := snapshotKeyPrefix + string(kind)
	if len(query) > 0 {
		key += ":" + query.Encode()
	}
	return key
}

func loadSnapshot[T any](ctx context.Context, s *SnapshotService, kind models.ResourceKind, query url.Values) ([]T, bool, error) {
	key := SnapshotKey(kind, query)

	var cached []T
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		if cached == nil {
			cached = []T{}
		}
		return cached, true, nil
	}

	var fresh []T
	if err := s.source.Fetch(ctx, kind, query, &fresh); err != nil {
		s.logger.Warn("snapshot fetch failed", zap.String("resource", string(kind)), zap.Error(err))
		return nil, false, err
	}
	if fresh == nil {
		fresh = []T{}
	}
	_ = s.cache.Set(ctx, key, fresh, s.ttl)
	return fresh, false, nil
}

// Sites returns the site snapshot.
func (s *SnapshotService) Sites(ctx context.Context) ([]models.Site, bool, error) {
	return loadSnapshot[models.Site](ctx, s, models.ResourceSites, nil)
}

// Equipment returns the equipment snapshot.
func (s *SnapshotService) Equipment(ctx context.Context) ([]models.Equipment, bool, error) {
	return loadSnapshot[models.Equipment](ctx, s, models.ResourceEquipment, nil)
}

// Labor returns the labor snapshot.
func (s *SnapshotService) Labor(ctx context.Context) ([]models.Labor, bool, error) {
	return loadSnapshot[models.Labor](ctx, s, models.ResourceLabor, nil)
}

// Materials returns the materials snapshot.
func (s *SnapshotService) Materials(ctx context.Context) ([]models.Material, bool, error) {
	return loadSnapshot[models.Material](ctx, s, models.ResourceMaterials, nil)
}

// Departments returns the department snapshot.
func (s *SnapshotService) Departments(ctx context.Context) ([]models.Department, bool, error) {
	return loadSnapshot[models.Department](ctx, s, models.ResourceDepartments, nil)
}

// Users returns the user snapshot.
func (s *SnapshotService) Users(ctx context.Context) ([]models.User, bool, error) {
	return loadSnapshot[models.User](ctx, s, models.ResourceUsers, nil)
}

// Requests returns the resource request snapshot.
func (s *SnapshotService) Requests(ctx context.Context) ([]models.ResourceRequest, bool, error) {
	return loadSnapshot[models.ResourceRequest](ctx, s, models.ResourceRequests, nil)
}

// Approvals returns the approval snapshot.
func (s *SnapshotService) Approvals(ctx context.Context) ([]models.Approval, bool, error) {
	return loadSnapshot[models.Approval](ctx, s, models.ResourceApprovals, nil)
}

// Projects returns the project snapshot.
func (s *SnapshotService) Projects(ctx context.Context) ([]models.Project, bool, error) {
	return loadSnapshot[models.Project](ctx, s, models.ResourceProjects, nil)
}

// Payrolls returns the payroll entries, optionally limited to one period.
func (s *SnapshotService) Payrolls(ctx context.Context, period string) ([]models.PayrollEntry, bool, error) {
	var query url.Values
	if period != "" {
		query = url.Values{"period": {period}}
	}
	return loadSnapshot[models.PayrollEntry](ctx, s, models.ResourcePayrolls, query)
}

// Invalidate drops every cached snapshot of a collection, including filtered variants.
func (s *SnapshotService) Invalidate(ctx context.Context, kind models.ResourceKind) error {
	return s.cache.Invalidate(ctx, SnapshotKey(kind, nil)+"*")
}
