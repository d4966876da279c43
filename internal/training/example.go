package training

import "encoding/json"

// Example is one previously authored accessibility bug report. Examples
// are used verbatim as few-shot context when generating new reports.
type Example struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	OneLiner  string `json:"one_liner"`
	WCAG      string `json:"wcag_failure"`

	FullReport string `json:"full_report,omitempty"`
	// Older data files stored the report under "fullReport".
	LegacyFullReport string `json:"fullReport,omitempty"`

	// Free-form fields carried through untouched from imports.
	IssueType  string          `json:"issue_type,omitempty"`
	OriginalID string          `json:"original_id,omitempty"`
	Rules      json.RawMessage `json:"rules,omitempty"`
	Patterns   json.RawMessage `json:"patterns,omitempty"`
}

// Report returns the full report text, preferring the current field
// over the legacy alias. Empty when neither is set.
func (e Example) Report() string {
	if e.FullReport != "" {
		return e.FullReport
	}
	return e.LegacyFullReport
}

type Metadata struct {
	Version       string `json:"version"`
	Created       string `json:"created"`
	TotalExamples int    `json:"total_examples"`
}

type dataFile struct {
	Examples []Example `json:"examples"`
	Metadata Metadata  `json:"metadata"`
}
