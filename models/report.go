package models

import "time"

// Dashboard is the feedback listing partitioned by category.
type Dashboard struct {
	Good         []*Feedback
	Constructive []*Feedback
	Total        int
}

// ReportData feeds the PDF export template.
type ReportData struct {
	Dashboard   *Dashboard
	GeneratedAt time.Time
}
