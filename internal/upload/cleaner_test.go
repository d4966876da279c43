package upload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRemovesOnlyExpiredFiles(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "old.png")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0644))
	expired := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, expired, expired))

	freshFile := filepath.Join(dir, "fresh.png")
	require.NoError(t, os.WriteFile(freshFile, []byte("x"), 0644))

	c := NewCleaner(dir, 24*time.Hour, time.Hour)
	c.Sweep()

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err), "expired file should be removed")

	_, err = os.Stat(freshFile)
	assert.NoError(t, err, "fresh file should survive")
}

func TestSweepMissingDirectory(t *testing.T) {
	c := NewCleaner(filepath.Join(t.TempDir(), "nope"), time.Hour, time.Hour)
	// Must not panic or create the directory.
	c.Sweep()
}
