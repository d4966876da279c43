package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
)

func newTestStore(t *testing.T) *training.Store {
	t.Helper()
	return training.NewStore(filepath.Join(t.TempDir(), "training-data.json"))
}

func TestExtractWCAG(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "MAS reference", text: "fails MAS 1.4.3 contrast", want: "1.4.3"},
		{name: "WCAG reference", text: "violates WCAG 2.4.7", want: "2.4.7"},
		{name: "focus order keyword", text: "the focus order jumps around", want: "2.4.3"},
		{name: "alt text keyword", text: "the alt text is missing", want: "1.1.1"},
		{name: "contrast keyword", text: "insufficient contrast on labels", want: "1.4.3"},
		{name: "keyboard keyword", text: "not reachable by keyboard", want: "2.1.1"},
		{name: "screen reader keyword", text: "screen reader stays silent", want: "4.1.2"},
		{name: "fallback", text: "something vague", want: "1.1.1"},
		{name: "MAS wins over keywords", text: "keyboard issue, see MAS 2.4.11", want: "2.4.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractWCAG(tt.text))
		})
	}
}

func TestCleanHTML(t *testing.T) {
	got := CleanHTML("<div>User Impact: bad</div><div>Actual result:&nbsp;broken</div>")

	assert.Contains(t, got, "User Impact: bad")
	assert.Contains(t, got, "Actual result: broken")
	assert.NotContains(t, got, "<div>")
	assert.NotContains(t, got, "&nbsp;")
}

func TestBuildExample(t *testing.T) {
	repro := "User Impact: Screen reader users hear nothing.\n" +
		"OS version: Windows 11 23H2\n" +
		"Edge Version: 120.0\n" +
		"Repro Steps:\nOpen the page\nTab to the button\n" +
		"Expected results: Button name is announced.\n" +
		"Actual result: Narrator announces blank, fails MAS 4.1.2."

	example := BuildExample("Bug: [Login] Button name not announced", repro, "")

	assert.Equal(t, "Button name not announced", example.OneLiner)
	assert.Equal(t, "4.1.2", example.WCAG)
	assert.Contains(t, example.FullReport, "User Impact:\nScreen reader users hear nothing.")
	assert.Contains(t, example.FullReport, "1. Open the page\n2. Tab to the button")
	assert.Contains(t, example.FullReport, "MAS 4.1.2 – Name, Role, Value")
	assert.Contains(t, example.FullReport, "Please refer to attached video")
}

func TestImportSimple(t *testing.T) {
	store := newTestStore(t)
	im := New(store)

	csvData := `one_liner,wcag_failure,full_report,issue_type
"image missing alt","1.1.1","full report one","axe_rule"
"no full report","1.4.3","",""
"low contrast","1.4.3","full report two",""
`

	res, err := im.ImportSimple(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Equal(t, 2, store.Len())

	stored := store.List()[0]
	assert.NotEmpty(t, stored.ID)
	assert.NotEmpty(t, stored.Timestamp)
	assert.Equal(t, "image missing alt", stored.OneLiner)
}

func TestImportWorkItems(t *testing.T) {
	store := newTestStore(t)
	im := New(store)

	csvData := `ID,Work Item Type,State,Title,Repro Steps,Description
101,Bug,Active,"Bug: Button name not announced","<div>Actual result: Narrator announces blank, fails MAS 4.1.2.</div>",""
102,Task,Active,"Not a bug","",""
103,Bug,Closed,"Bug: closed issue","",""
`

	res, err := im.ImportWorkItems(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	require.Equal(t, 1, store.Len())

	stored := store.List()[0]
	assert.Equal(t, "101", stored.OriginalID)
	assert.Equal(t, "imported_bug", stored.IssueType)
	assert.Equal(t, "4.1.2", stored.WCAG)
}

func TestWCAGName(t *testing.T) {
	assert.Equal(t, "Contrast (Minimum)", WCAGName("1.4.3"))
	assert.Equal(t, "Accessibility Issue", WCAGName("9.9.9"))
}
