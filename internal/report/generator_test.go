package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
)

type fakeModel struct {
	response   string
	err        error
	lastPrompt string
	lastMime   string
	calls      int
}

func (f *fakeModel) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastMime = mimeType
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeModel) Name() string { return "fake" }

func writeScreenshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screenshot.png")
	// Minimal PNG header so mime sniffing sees an image.
	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func newTestStore(t *testing.T) *training.Store {
	t.Helper()
	return training.NewStore(filepath.Join(t.TempDir(), "training-data.json"))
}

func TestParseResponseWithMarkers(t *testing.T) {
	got := parseResponse("---BUG REPORT---\nFoo\n---SUGGESTION---\nBar", false)

	assert.Equal(t, "Foo", got.Report)
	assert.Equal(t, "Bar", got.Suggestion)
}

func TestParseResponseMarkersCaseInsensitive(t *testing.T) {
	got := parseResponse("---bug report---\nFoo\n---suggestion---\nBar", false)

	assert.Equal(t, "Foo", got.Report)
	assert.Equal(t, "Bar", got.Suggestion)
}

func TestParseResponseNoMarkers(t *testing.T) {
	raw := "just some prose the model produced"
	got := parseResponse(raw, false)

	assert.Equal(t, raw, got.Report)
	assert.Empty(t, got.Suggestion)
}

func TestParseResponseSuggestionMarkerOnly(t *testing.T) {
	got := parseResponse("preamble\n---SUGGESTION---\nFix it", false)

	// Without the opening marker the report keeps the full raw output.
	assert.Contains(t, got.Report, "preamble")
	assert.Equal(t, "Fix it", got.Suggestion)
}

func TestParseResponseCustomFormatPassesThrough(t *testing.T) {
	raw := "---BUG REPORT---\nignored markers\n---SUGGESTION---\nstill raw"
	got := parseResponse(raw, true)

	assert.Equal(t, raw, got.Report)
	assert.Empty(t, got.Suggestion)
}

func TestGenerateEndToEnd(t *testing.T) {
	store := newTestStore(t)
	store.Add(training.Example{
		OneLiner:   "image missing alt text",
		WCAG:       "1.1.1",
		FullReport: "User Impact:\nScreen reader users miss the image content.",
	})

	model := &fakeModel{response: "---BUG REPORT---\nFoo\n---SUGGESTION---\nBar"}
	gen := NewGenerator(store, model)

	got := gen.Generate(context.Background(), GenerationRequest{
		ScreenshotPath: writeScreenshot(t),
		OneLiner:       "photo has no alt text",
		WCAG:           "1.1.1",
		URL:            "https://example.com",
	})

	assert.Equal(t, "Foo", got.Report)
	assert.Equal(t, "Bar", got.Suggestion)
	assert.Equal(t, 1, model.calls)

	// The exact-WCAG match must appear as few-shot context.
	assert.Contains(t, model.lastPrompt, "Screen reader users miss the image content.")
	assert.Contains(t, model.lastPrompt, "Issue Description: photo has no alt text")
	assert.Equal(t, "image/png", model.lastMime)
}

func TestGenerateModelFailureBecomesErrorReport(t *testing.T) {
	store := newTestStore(t)
	model := &fakeModel{err: errors.New("quota exceeded")}
	gen := NewGenerator(store, model)

	got := gen.Generate(context.Background(), GenerationRequest{
		ScreenshotPath: writeScreenshot(t),
		OneLiner:       "low contrast",
		WCAG:           "1.4.3",
	})

	assert.Equal(t, "Error: quota exceeded", got.Report)
	assert.Empty(t, got.Suggestion)
}

func TestGenerateMissingScreenshotBecomesErrorReport(t *testing.T) {
	store := newTestStore(t)
	model := &fakeModel{response: "unused"}
	gen := NewGenerator(store, model)

	got := gen.Generate(context.Background(), GenerationRequest{
		ScreenshotPath: filepath.Join(t.TempDir(), "missing.png"),
		OneLiner:       "low contrast",
		WCAG:           "1.4.3",
	})

	assert.True(t, len(got.Report) > 0)
	assert.Contains(t, got.Report, "Error: ")
	assert.Equal(t, 0, model.calls)
}

func TestGenerateCustomFormatSkipsParsing(t *testing.T) {
	store := newTestStore(t)
	raw := "Title: broken button\nSeverity: high"
	model := &fakeModel{response: raw}
	gen := NewGenerator(store, model)

	got := gen.Generate(context.Background(), GenerationRequest{
		ScreenshotPath: writeScreenshot(t),
		OneLiner:       "button unreachable",
		WCAG:           "2.1.1",
		CustomFormat:   "Title: {title}\nSeverity: {severity}",
	})

	assert.Equal(t, raw, got.Report)
	assert.Empty(t, got.Suggestion)
	assert.Contains(t, model.lastPrompt, "generate a bug report using this format:")
}
