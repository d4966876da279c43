package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
)

const (
	bugReportMarker  = "---BUG REPORT---"
	suggestionMarker = "---SUGGESTION---"
)

// systemTemplate primes the model with the expected report structure.
// The section order and closing sentence are load-bearing: imported
// training reports follow exactly this layout and testers paste the
// output into their tracker unchanged.
const systemTemplate = `You are an expert accessibility tester specializing in WCAG compliance and assistive technology testing.
Your task is to generate detailed, professional accessibility bug reports based on the provided inputs.

TRAINING CONTEXT:
You have been trained on patterns from real accessibility testing scenarios. Always follow these principles:

1. USER IMPACT: Always start with how the issue affects users with disabilities
2. TEST ENVIRONMENT: Be specific about OS, browser, and assistive technology versions
3. REPRODUCTION STEPS: Provide clear, step-by-step instructions
4. ACTUAL vs EXPECTED: Clearly distinguish what happens vs what should happen
5. MAS REFERENCE: Map to appropriate WCAG success criteria

SIMILAR EXAMPLES:
%s

RESPONSE FORMAT:
Always generate reports in this exact structure:

User Impact:
[Specific impact on users with disabilities, mentioning the assistive technology affected]

Test Environment:
[OS version, browser version, assistive technology version]

Pre-requisite:
[System settings and browser configurations needed]

Steps to Reproduce:
[Numbered steps to reproduce the issue]

Actual Result:
[What actually happens - the bug behavior]

Expected Result:
[What should happen - the correct behavior]

MAS Reference:
[WCAG success criteria reference]

Please refer to attached video in attachment tab for more information about the bug.`

// SystemPrompt renders the instruction template with the retrieved
// examples serialized as JSON. It is sent regardless of whether a
// custom format drives the final parsing.
func SystemPrompt(examples []training.Example) string {
	serialized, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		serialized = []byte("[]")
	}
	return fmt.Sprintf(systemTemplate, serialized)
}

// fewShotContext renders the retrieved examples as a numbered block.
// Examples without a stored report fall back to a raw JSON dump so the
// model still sees something usable.
func fewShotContext(examples []training.Example) string {
	if len(examples) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(examples))
	for i, ex := range examples {
		body := ex.Report()
		if body == "" {
			dump, err := json.MarshalIndent(ex, "", "  ")
			if err == nil {
				body = string(dump)
			}
		}
		rendered = append(rendered, fmt.Sprintf("Example %d:\n%s", i+1, body))
	}

	return strings.Join(rendered, "\n\n")
}

// BuildPrompt composes the task portion of the prompt. With a custom
// format the model fills the caller's literal template; otherwise it
// is asked for a report plus a fix suggestion separated by the two
// markers the parser looks for.
func BuildPrompt(examples []training.Example, oneLiner, wcag, url, customFormat string) string {
	if url == "" {
		url = "Not provided"
	}

	var sb strings.Builder
	sb.WriteString("You are an expert accessibility engineer.\n\n")

	if context := fewShotContext(examples); context != "" {
		sb.WriteString("Here are some example bug reports for context:\n")
		sb.WriteString(context)
		sb.WriteString("\n\n")
	}

	if strings.TrimSpace(customFormat) != "" {
		fmt.Fprintf(&sb, "Given the following issue, generate a bug report using this format:\n%s\n\n", customFormat)
		fmt.Fprintf(&sb, "Issue Description: %s\nMAS/WCAG Failure: %s\nURL: %s", oneLiner, wcag, url)
		return sb.String()
	}

	sb.WriteString("Given the following issue, generate:\n")
	sb.WriteString("1. A detailed accessibility bug report (for a bug tracking system)\n")
	sb.WriteString("2. A suggestion for code change to fix the issue (in clear, actionable terms, with code snippets if possible)\n\n")
	fmt.Fprintf(&sb, "Issue Description: %s\nMAS/WCAG Failure: %s\nURL: %s\n\n", oneLiner, wcag, url)
	fmt.Fprintf(&sb, "Format your response as:\n%s\n<bug report>\n%s\n<code change suggestion>", bugReportMarker, suggestionMarker)

	return sb.String()
}
