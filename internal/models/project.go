package models

// Project is a construction project. The backend sometimes embeds the site as projectSite and
// sometimes only sends siteId; ProjectSite is always resolved before leaving the gateway.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status,omitempty"`
	SiteID      string    `json:"siteId,omitempty"`
	ProjectSite *Site     `json:"projectSite"`
	StartDate   Timestamp `json:"startDate"`
	EndDate     Timestamp `json:"endDate"`
	Budget      Amount    `json:"budget"`
}
