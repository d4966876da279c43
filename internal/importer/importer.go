// Package importer converts exported bug-tracker CSVs into training
// examples. Two layouts are supported: the simple layout with
// ready-made one_liner/wcag_failure/full_report columns, and the work
// item export layout (Title, Repro Steps, Description) whose HTML-laden
// fields need cleaning and restructuring first.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

var (
	masPattern       = regexp.MustCompile(`(?i)MAS\s+(\d+\.\d+\.\d+)`)
	wcagPattern      = regexp.MustCompile(`(?i)WCAG\s+(\d+\.\d+\.\d+)`)
	titlePrefix      = regexp.MustCompile(`^.*?:\s*`)
	bracketedTags    = regexp.MustCompile(`\[.*?\]`)
	whitespaceRuns   = regexp.MustCompile(`[ \t]+`)
	stepsSection     = regexp.MustCompile(`(?is)Repro Steps:\s*(.*?)(?:Expected results:|Actual result:|$)`)
	actualSection    = regexp.MustCompile(`(?i)Actual result:\s*(.*?)(?:\n|$)`)
	expectedSection  = regexp.MustCompile(`(?is)Expected results:\s*(.*?)(?:Actual result:|$)`)
	impactSection    = regexp.MustCompile(`(?i)User Impact:\s*(.*?)(?:\n|$)`)
	osVersionLine    = regexp.MustCompile(`(?i)OS version:\s*(.*?)(?:\n|$)`)
	browserLine      = regexp.MustCompile(`(?i)Edge Version:\s*(.*?)(?:\n|$)`)
	blockBreaks      = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>`)
)

type Result struct {
	Imported int
	Skipped  int
}

type Importer struct {
	store *training.Store
}

func New(store *training.Store) *Importer {
	return &Importer{store: store}
}

// ImportSimple reads a CSV with one_liner, wcag_failure and
// full_report columns. Rows missing any required column are skipped.
func (im *Importer) ImportSimple(r io.Reader) (Result, error) {
	rows, err := readRows(r)
	if err != nil {
		return Result{}, err
	}

	var res Result
	var examples []training.Example

	for _, row := range rows {
		if row["one_liner"] == "" || row["wcag_failure"] == "" || row["full_report"] == "" {
			res.Skipped++
			continue
		}
		examples = append(examples, training.Example{
			OneLiner:   row["one_liner"],
			WCAG:       row["wcag_failure"],
			FullReport: row["full_report"],
			IssueType:  row["issue_type"],
		})
		res.Imported++
	}

	im.store.AddAll(examples)
	logger.Info("Simple CSV imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))

	return res, nil
}

// ImportWorkItems reads a bug-tracker work item export. Only rows that
// are active bugs get converted; the rest are counted as skipped.
func (im *Importer) ImportWorkItems(r io.Reader) (Result, error) {
	rows, err := readRows(r)
	if err != nil {
		return Result{}, err
	}

	var res Result
	var examples []training.Example

	for _, row := range rows {
		if row["Work Item Type"] != "Bug" || row["State"] != "Active" {
			res.Skipped++
			continue
		}

		example := BuildExample(row["Title"], row["Repro Steps"], row["Description"])
		if example.OneLiner == "" || example.WCAG == "" || example.FullReport == "" {
			res.Skipped++
			continue
		}

		example.OriginalID = row["ID"]
		example.IssueType = "imported_bug"
		examples = append(examples, example)
		res.Imported++
	}

	im.store.AddAll(examples)
	logger.Info("Work item CSV imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))

	return res, nil
}

func readRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// BuildExample turns one work item row into a training example with
// the standard seven-section report layout.
func BuildExample(title, reproSteps, description string) training.Example {
	title = CleanHTML(title)
	reproSteps = CleanHTML(reproSteps)
	description = CleanHTML(description)

	wcag := ExtractWCAG(reproSteps + " " + description)
	oneLiner := bracketedTags.ReplaceAllString(titlePrefix.ReplaceAllString(title, ""), "")
	oneLiner = strings.TrimSpace(oneLiner)

	fullReport := fmt.Sprintf(`User Impact:
%s

Test Environment:
%s

Pre-requisite:
%s

Steps to Reproduce:
%s

Actual Result:
%s

Expected Result:
%s

MAS Reference:
MAS %s – %s

Please refer to attached video in attachment tab for more information about the bug.`,
		extractUserImpact(reproSteps),
		extractEnvironment(reproSteps),
		extractPrerequisites(),
		extractSteps(reproSteps),
		extractActualResult(reproSteps),
		extractExpectedResult(reproSteps),
		wcag,
		WCAGName(wcag),
	)

	return training.Example{
		OneLiner:   oneLiner,
		WCAG:       wcag,
		FullReport: fullReport,
	}
}

// ExtractWCAG pulls a MAS/WCAG code out of free text, falling back to
// keyword heuristics and finally the non-text-content criterion.
func ExtractWCAG(text string) string {
	if m := masPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := wcagPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "focus order"):
		return "2.4.3"
	case strings.Contains(lower, "alt text"), strings.Contains(lower, "image"):
		return "1.1.1"
	case strings.Contains(lower, "contrast"):
		return "1.4.3"
	case strings.Contains(lower, "keyboard"):
		return "2.1.1"
	case strings.Contains(lower, "screen reader"):
		return "4.1.2"
	}

	return "1.1.1"
}

// CleanHTML strips markup from a tracker field, keeping line structure
// so the section regexes still find their anchors.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}

	// Block elements become line breaks so "Actual result:" style
	// anchors stay on their own lines after stripping.
	html = blockBreaks.ReplaceAllString(html, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	text := doc.Text()
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return strings.Join(cleaned, "\n")
}

func extractUserImpact(text string) string {
	if m := impactSection.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Users with disabilities will be impacted by this accessibility issue."
}

func extractEnvironment(text string) string {
	var sb strings.Builder
	if m := osVersionLine.FindStringSubmatch(text); m != nil {
		fmt.Fprintf(&sb, "OS: %s\n", strings.TrimSpace(m[1]))
	} else {
		sb.WriteString("OS: Windows 11 Version 22H2\n")
	}
	if m := browserLine.FindStringSubmatch(text); m != nil {
		fmt.Fprintf(&sb, "Browser: Edge %s\n", strings.TrimSpace(m[1]))
	}
	sb.WriteString("Screen Reader: Narrator, NVDA")
	return sb.String()
}

func extractPrerequisites() string {
	return "1. Go to system settings-> System-> Display->Scale & Layout-> Change the size of text, apps, and other items at 150%(Recommended)-> Display Resolution (1920*1080)\n2. Go to browser Settings-> Zoom- 100%"
}

func extractSteps(text string) string {
	m := stepsSection.FindStringSubmatch(text)
	if m == nil {
		return "1. Open the application URL\n2. Navigate to the affected element\n3. Verify the accessibility issue"
	}

	var steps []string
	for _, line := range strings.Split(m[1], "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			steps = append(steps, fmt.Sprintf("%d. %s", len(steps)+1, trimmed))
		}
	}
	if len(steps) == 0 {
		return "1. Open the application URL\n2. Navigate to the affected element\n3. Verify the accessibility issue"
	}

	return strings.Join(steps, "\n")
}

func extractActualResult(text string) string {
	if m := actualSection.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "The accessibility issue occurs as described."
}

func extractExpectedResult(text string) string {
	if m := expectedSection.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "The accessibility issue should not occur and the element should be accessible."
}
