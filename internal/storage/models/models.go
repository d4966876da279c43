package models

import "time"

// ReportRecord is one generated bug report kept for the history view.
type ReportRecord struct {
	ID             string
	OneLiner       string
	WCAG           string
	URL            string
	Provider       string
	Report         string
	Suggestion     string
	ScreenshotName string
	LatencyMS      int
	CreatedAt      time.Time
}
