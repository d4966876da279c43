package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	require.NoError(t, client.InitSchema())
	t.Cleanup(func() { client.Close() })
	return client
}

func TestInsertAndListReports(t *testing.T) {
	client := newTestClient(t)

	first := &models.ReportRecord{
		ID:        "r1",
		OneLiner:  "image missing alt text",
		WCAG:      "1.1.1",
		Provider:  "openai",
		Report:    "report body",
		LatencyMS: 1200,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	second := &models.ReportRecord{
		ID:        "r2",
		OneLiner:  "low contrast",
		WCAG:      "1.4.3",
		Provider:  "anthropic",
		Report:    "other body",
		CreatedAt: time.Now(),
	}

	require.NoError(t, client.InsertReport(first))
	require.NoError(t, client.InsertReport(second))

	records, err := client.ListReports(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "r2", records[0].ID)
	assert.Equal(t, "r1", records[1].ID)
	assert.Equal(t, "1.1.1", records[1].WCAG)
}

func TestListReportsLimit(t *testing.T) {
	client := newTestClient(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, client.InsertReport(&models.ReportRecord{
			ID:        string(rune('a' + i)),
			OneLiner:  "x",
			WCAG:      "1.1.1",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := client.ListReports(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestListReportsEmpty(t *testing.T) {
	client := newTestClient(t)

	records, err := client.ListReports(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
