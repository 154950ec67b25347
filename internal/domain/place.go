package domain

import "strings"

// NamePlaceholder marks a row whose name column holds no real value.
const NamePlaceholder = "-"

// Place is one catalog record describing a location or activity.
// ID is derived from Name at ingestion time and is the routable identifier.
type Place struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	District     string `json:"district"`
	ActivityType string `json:"activityType"`
	Description  string `json:"description"`
	Link         string `json:"link"`
	Comment      string `json:"comment"`
}

// HasName reports whether the place carries a usable display name.
// Records without one never enter the catalog, but cached data written by
// older revisions is filtered with the same rule at evaluation time.
func (p Place) HasName() bool {
	name := strings.TrimSpace(p.Name)
	return name != "" && name != NamePlaceholder
}
