package models

// DashboardType distinguishes BI panels from plain reports.
type DashboardType string

const (
	DashboardTypeBI     DashboardType = "BI"
	DashboardTypeReport DashboardType = "REPORT"
)

// Dashboard represents a displayable resource owned by exactly one sector.
// UpdatedDate is kept as the stored "DD/MM/YYYY" text, never parsed.
type Dashboard struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Type        DashboardType `json:"type"`
	Description *string       `json:"description,omitempty"`
	UpdatedDate string        `json:"updatedDate"`
	Tags        []string      `json:"tags"`
	Sector      string        `json:"sector"`
	URL         string        `json:"url"`
}
