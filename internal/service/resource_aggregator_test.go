package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
)

func testSites() []models.Site {
	return []models.Site{
		{ID: "s1", Name: "North Yard"},
		{ID: "s2", Name: "Harbour Tower"},
		{ID: "s3", Name: "Idle Lot"},
	}
}

func TestAggregateEquipmentGroupsInFirstSeenOrder(t *testing.T) {
	records := []models.Equipment{
		{ID: "e1", SiteID: "s2", Status: models.EquipmentAvailable},
		{ID: "e2", SiteID: "s1", Status: models.EquipmentUnavailable},
		{ID: "e3", SiteID: "s2", Status: models.EquipmentUnavailable},
		{ID: "e4", SiteID: "s2", Status: models.EquipmentAvailable},
	}

	rows := AggregateEquipment(records, testSites())

	require.Len(t, rows, 2)
	assert.Equal(t, dto.EquipmentSiteSummary{ID: "s2", Site: "Harbour Tower", Total: 3, Available: 2, Unavailable: 1}, rows[0])
	assert.Equal(t, dto.EquipmentSiteSummary{ID: "s1", Site: "North Yard", Total: 1, Unavailable: 1}, rows[1])
}

func TestAggregateEquipmentDropsOrphans(t *testing.T) {
	records := []models.Equipment{
		{ID: "e1", SiteID: "s1", Status: models.EquipmentAvailable},
		{ID: "e2", SiteID: "ghost", Status: models.EquipmentAvailable},
		{ID: "e3", SiteID: "", Status: models.EquipmentAvailable},
	}

	rows := AggregateEquipment(records, testSites())

	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].ID)
	assert.Equal(t, 1, rows[0].Total)
}

func TestAggregateEmptyInputsReturnEmptySlice(t *testing.T) {
	assert.NotNil(t, AggregateEquipment(nil, nil))
	assert.Empty(t, AggregateEquipment(nil, testSites()))
	assert.Empty(t, AggregateLabor([]models.Labor{{ID: "l1", SiteID: "s1"}}, nil))
	assert.NotNil(t, AggregateMaterials(nil, nil))
}

func TestAggregateCountersSumToTotal(t *testing.T) {
	equipment := []models.Equipment{
		{SiteID: "s1", Status: models.EquipmentAvailable},
		{SiteID: "s1", Status: "Retired"},
		{SiteID: "s1", Status: models.EquipmentUnavailable},
	}
	for _, row := range AggregateEquipment(equipment, testSites()) {
		assert.Equal(t, row.Total, row.Available+row.Unavailable+row.Other)
	}

	labor := []models.Labor{
		{SiteID: "s1", Status: models.LaborAllocated, ActiveStatus: models.LaborActive},
		{SiteID: "s1", Status: models.LaborOnLeave, ActiveStatus: models.LaborInActive},
		{SiteID: "s2", Status: models.LaborUnallocated, ActiveStatus: ""},
		{SiteID: "s2", Status: "Seconded", ActiveStatus: models.LaborActive},
	}
	for _, row := range AggregateLabor(labor, testSites()) {
		assert.Equal(t, row.Total, row.Allocated+row.Unallocated+row.OnLeave+row.OtherAllocation)
		assert.Equal(t, row.Total, row.Active+row.InActive+row.OtherActivity)
	}

	materials := []models.Material{
		{SiteID: "s2", Status: models.MaterialLowStock},
		{SiteID: "s2", Status: models.MaterialOutOfStock},
		{SiteID: "s3", Status: models.MaterialAvailable},
		{SiteID: "s3", Status: "Ordered"},
	}
	for _, row := range AggregateMaterials(materials, testSites()) {
		assert.Equal(t, row.Total, row.Available+row.LowStock+row.OutOfStock+row.Other)
	}
}

func TestAggregateLaborCountsBothAxes(t *testing.T) {
	labor := []models.Labor{
		{SiteID: "s1", Status: models.LaborAllocated, ActiveStatus: models.LaborActive},
		{SiteID: "s1", Status: models.LaborAllocated, ActiveStatus: models.LaborInActive},
		{SiteID: "s1", Status: models.LaborOnLeave, ActiveStatus: models.LaborInActive},
	}

	rows := AggregateLabor(labor, testSites())

	require.Len(t, rows, 1)
	assert.Equal(t, dto.LaborSiteSummary{
		ID: "s1", Site: "North Yard", Total: 3,
		Allocated: 2, OnLeave: 1,
		Active: 1, InActive: 2,
	}, rows[0])
}

func TestAggregateIsIdempotent(t *testing.T) {
	materials := []models.Material{
		{SiteID: "s3", Status: models.MaterialAvailable},
		{SiteID: "s1", Status: models.MaterialLowStock},
		{SiteID: "s3", Status: models.MaterialOutOfStock},
		{SiteID: "s2", Status: models.MaterialAvailable},
	}
	sites := testSites()

	first := AggregateMaterials(materials, sites)
	second := AggregateMaterials(materials, sites)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"s3", "s1", "s2"}, []string{first[0].ID, first[1].ID, first[2].ID})
}

func TestAggregateUsesFirstSiteForDuplicateIDs(t *testing.T) {
	sites := []models.Site{{ID: "s1", Name: "First"}, {ID: "s1", Name: "Second"}}
	rows := AggregateEquipment([]models.Equipment{{SiteID: "s1", Status: models.EquipmentAvailable}}, sites)

	require.Len(t, rows, 1)
	assert.Equal(t, "First", rows[0].Site)
}
