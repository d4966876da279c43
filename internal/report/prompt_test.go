package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
)

func TestBuildPromptDefaultFormat(t *testing.T) {
	examples := []training.Example{
		{OneLiner: "image missing alt text", WCAG: "1.1.1", FullReport: "Full report body"},
	}

	prompt := BuildPrompt(examples, "photo has no alt text", "1.1.1", "https://example.com", "")

	assert.Contains(t, prompt, "Here are some example bug reports for context:")
	assert.Contains(t, prompt, "Example 1:\nFull report body")
	assert.Contains(t, prompt, "Issue Description: photo has no alt text")
	assert.Contains(t, prompt, "MAS/WCAG Failure: 1.1.1")
	assert.Contains(t, prompt, "URL: https://example.com")
	assert.Contains(t, prompt, "---BUG REPORT---")
	assert.Contains(t, prompt, "---SUGGESTION---")
}

func TestBuildPromptCustomFormat(t *testing.T) {
	prompt := BuildPrompt(nil, "low contrast text", "1.4.3", "", "Title: {title}\nSeverity: {severity}")

	assert.Contains(t, prompt, "generate a bug report using this format:\nTitle: {title}\nSeverity: {severity}")
	assert.Contains(t, prompt, "URL: Not provided")
	assert.NotContains(t, prompt, "---BUG REPORT---")
}

func TestBuildPromptWhitespaceCustomFormatFallsBack(t *testing.T) {
	prompt := BuildPrompt(nil, "x", "1.1.1", "", "   \n\t ")
	assert.Contains(t, prompt, "---BUG REPORT---")
}

func TestBuildPromptOmitsEmptyContextBlock(t *testing.T) {
	prompt := BuildPrompt(nil, "x", "1.1.1", "", "")
	assert.NotContains(t, prompt, "Here are some example bug reports for context:")
}

func TestBuildPromptJoinsExamplesWithBlankLine(t *testing.T) {
	examples := []training.Example{
		{OneLiner: "a", WCAG: "1.1.1", FullReport: "first"},
		{OneLiner: "b", WCAG: "1.4.3", FullReport: "second"},
	}

	prompt := BuildPrompt(examples, "x", "1.1.1", "", "")

	assert.Contains(t, prompt, "Example 1:\nfirst\n\nExample 2:\nsecond")
}

func TestFewShotContextFallsBackToDump(t *testing.T) {
	examples := []training.Example{{ID: "7", OneLiner: "no report stored", WCAG: "2.4.3"}}

	context := fewShotContext(examples)

	// No full report: the example is dumped as structured JSON instead.
	assert.Contains(t, context, `"one_liner": "no report stored"`)
}

func TestSystemPromptStructure(t *testing.T) {
	examples := []training.Example{{OneLiner: "tab order broken", WCAG: "2.4.3", FullReport: "r"}}

	prompt := SystemPrompt(examples)

	sections := []string{
		"User Impact:",
		"Test Environment:",
		"Pre-requisite:",
		"Steps to Reproduce:",
		"Actual Result:",
		"Expected Result:",
		"MAS Reference:",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(prompt, section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}

	assert.Contains(t, prompt, `"one_liner": "tab order broken"`)
	assert.Contains(t, prompt, "Please refer to attached video in attachment tab for more information about the bug.")
}
