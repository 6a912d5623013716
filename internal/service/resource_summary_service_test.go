package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type fakeResourceSnapshots struct {
	sites     []models.Site
	equipment []models.Equipment
	labor     []models.Labor
	materials []models.Material
	hit       bool
	sitesErr  error
	laborErr  error
}

func (f *fakeResourceSnapshots) Sites(context.Context) ([]models.Site, bool, error) {
	return f.sites, f.hit, f.sitesErr
}

func (f *fakeResourceSnapshots) Equipment(context.Context) ([]models.Equipment, bool, error) {
	return f.equipment, f.hit, nil
}

func (f *fakeResourceSnapshots) Labor(context.Context) ([]models.Labor, bool, error) {
	return f.labor, f.hit, f.laborErr
}

func (f *fakeResourceSnapshots) Materials(context.Context) ([]models.Material, bool, error) {
	return f.materials, f.hit, nil
}

func summaryFixture() *fakeResourceSnapshots {
	return &fakeResourceSnapshots{
		sites: testSites(),
		equipment: []models.Equipment{
			{ID: "e1", SiteID: "s1", Status: models.EquipmentAvailable},
			{ID: "e2", SiteID: "s1", Status: models.EquipmentUnavailable},
			{ID: "e3", SiteID: "gone", Status: models.EquipmentAvailable},
		},
		labor: []models.Labor{
			{ID: "l1", SiteID: "s2", Status: models.LaborAllocated, ActiveStatus: models.LaborActive},
		},
		materials: []models.Material{
			{ID: "m1", SiteID: "s2", Status: models.MaterialLowStock},
			{ID: "m2", SiteID: "s1", Status: models.MaterialOutOfStock},
		},
	}
}

func TestResourceSummaryEquipmentBySite(t *testing.T) {
	svc := NewResourceSummaryService(summaryFixture(), nil)

	rows, hit, err := svc.EquipmentBySite(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Total)
}

func TestResourceSummaryReportsCacheHit(t *testing.T) {
	fixture := summaryFixture()
	fixture.hit = true
	svc := NewResourceSummaryService(fixture, nil)

	_, hit, err := svc.MaterialsBySite(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestResourceSummaryPropagatesErrors(t *testing.T) {
	fixture := summaryFixture()
	fixture.laborErr = appErrors.Clone(appErrors.ErrUpstream, "backend labor returned 418")
	svc := NewResourceSummaryService(fixture, nil)

	_, _, err := svc.LaborBySite(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUpstream)

	_, _, err = svc.KPI(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrUpstream)
}

func TestResourceSummaryKPI(t *testing.T) {
	svc := NewResourceSummaryService(summaryFixture(), nil)
	fixed := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	kpi, _, err := svc.KPI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, kpi.EquipmentTotal)
	assert.Equal(t, 1, kpi.EquipmentAvailable)
	assert.Equal(t, 1, kpi.LaborTotal)
	assert.Equal(t, 1, kpi.LaborAllocated)
	assert.Equal(t, 1, kpi.LaborActive)
	assert.Equal(t, 2, kpi.MaterialTotal)
	assert.Equal(t, 1, kpi.MaterialLowStock)
	assert.Equal(t, 1, kpi.MaterialOutOfStock)
	assert.Equal(t, 3, kpi.SiteCount)
	assert.Equal(t, 2, kpi.SitesWithResources)
	assert.Equal(t, fixed, kpi.GeneratedAt)
}
