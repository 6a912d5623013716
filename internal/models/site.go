package models

// Site is read-only reference data that resource records point at via siteId.
type Site struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}
