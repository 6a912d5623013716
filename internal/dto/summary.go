package dto

import "time"

// EquipmentSiteSummary is one aggregated equipment row per site.
type EquipmentSiteSummary struct {
	ID          string `json:"id"`
	Site        string `json:"site"`
	Total       int    `json:"total"`
	Available   int    `json:"available"`
	Unavailable int    `json:"unavailable"`
	Other       int    `json:"other,omitempty"`
}

// LaborSiteSummary counts workers per site on both the allocation and the activity axis.
type LaborSiteSummary struct {
	ID              string `json:"id"`
	Site            string `json:"site"`
	Total           int    `json:"total"`
	Allocated       int    `json:"allocated"`
	Unallocated     int    `json:"unallocated"`
	OnLeave         int    `json:"onLeave"`
	OtherAllocation int    `json:"otherAllocation,omitempty"`
	Active          int    `json:"active"`
	InActive        int    `json:"inActive"`
	OtherActivity   int    `json:"otherActivity,omitempty"`
}

// MaterialSiteSummary is one aggregated material row per site.
type MaterialSiteSummary struct {
	ID         string `json:"id"`
	Site       string `json:"site"`
	Total      int    `json:"total"`
	Available  int    `json:"available"`
	LowStock   int    `json:"lowStock"`
	OutOfStock int    `json:"outOfStock"`
	Other      int    `json:"other,omitempty"`
}

// ResourceKPIResponse is the dashboard headline block across all sites.
type ResourceKPIResponse struct {
	EquipmentTotal     int       `json:"equipmentTotal"`
	EquipmentAvailable int       `json:"equipmentAvailable"`
	LaborTotal         int       `json:"laborTotal"`
	LaborAllocated     int       `json:"laborAllocated"`
	LaborActive        int       `json:"laborActive"`
	MaterialTotal      int       `json:"materialTotal"`
	MaterialLowStock   int       `json:"materialLowStock"`
	MaterialOutOfStock int       `json:"materialOutOfStock"`
	SiteCount          int       `json:"siteCount"`
	SitesWithResources int       `json:"sitesWithResources"`
	GeneratedAt        time.Time `json:"generatedAt"`
}
