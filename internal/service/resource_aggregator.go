package service

import (
	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
)

// aggregateBySite groups records under the site they reference. Rows appear in the order their
// site is first seen while walking records; records pointing at an unknown site are skipped.
func aggregateBySite[R any, S any](records []R, sites []models.Site, siteOf func(R) string, newRow func(models.Site) S, count func(*S, R)) []S {
	index := make(map[string]models.Site, len(sites))
	for _, site := range sites {
		if _, exists := index[site.ID]; !exists {
			index[site.ID] = site
		}
	}

	positions := make(map[string]int)
	rows := make([]S, 0)
	for _, record := range records {
		site, ok := index[siteOf(record)]
		if !ok {
			continue
		}
		pos, seen := positions[site.ID]
		if !seen {
			pos = len(rows)
			positions[site.ID] = pos
			rows = append(rows, newRow(site))
		}
		count(&rows[pos], record)
	}
	return rows
}

// AggregateEquipment counts equipment per site by availability.
func AggregateEquipment(records []models.Equipment, sites []models.Site) []dto.EquipmentSiteSummary {
	return aggregateBySite(records, sites,
		func(e models.Equipment) string { return e.SiteID },
		func(s models.Site) dto.EquipmentSiteSummary {
			return dto.EquipmentSiteSummary{ID: s.ID, Site: s.Name}
		},
		func(row *dto.EquipmentSiteSummary, e models.Equipment) {
			row.Total++
			switch e.Status {
			case models.EquipmentAvailable:
				row.Available++
			case models.EquipmentUnavailable:
				row.Unavailable++
			default:
				row.Other++
			}
		})
}

// AggregateLabor counts workers per site. Allocation and activity are counted independently,
// so each axis sums to the total on its own.
func AggregateLabor(records []models.Labor, sites []models.Site) []dto.LaborSiteSummary {
	return aggregateBySite(records, sites,
		func(l models.Labor) string { return l.SiteID },
		func(s models.Site) dto.LaborSiteSummary {
			return dto.LaborSiteSummary{ID: s.ID, Site: s.Name}
		},
		func(row *dto.LaborSiteSummary, l models.Labor) {
			row.Total++
			switch l.Status {
			case models.LaborAllocated:
				row.Allocated++
			case models.LaborUnallocated:
				row.Unallocated++
			case models.LaborOnLeave:
				row.OnLeave++
			default:
				row.OtherAllocation++
			}
			switch l.ActiveStatus {
			case models.LaborActive:
				row.Active++
			case models.LaborInActive:
				row.InActive++
			default:
				row.OtherActivity++
			}
		})
}

// AggregateMaterials counts material lines per site by stock level.
func AggregateMaterials(records []models.Material, sites []models.Site) []dto.MaterialSiteSummary {
	return aggregateBySite(records, sites,
		func(m models.Material) string { return m.SiteID },
		func(s models.Site) dto.MaterialSiteSummary {
			return dto.MaterialSiteSummary{ID: s.ID, Site: s.Name}
		},
		func(row *dto.MaterialSiteSummary, m models.Material) {
			row.Total++
			switch m.Status {
			case models.MaterialAvailable:
				row.Available++
			case models.MaterialLowStock:
				row.LowStock++
			case models.MaterialOutOfStock:
				row.OutOfStock++
			default:
				row.Other++
			}
		})
}
