package upload

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/metrics"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

// Cleaner removes screenshot uploads once they outlive their purpose.
// Screenshots are only needed for the duration of one generation call;
// the grace period exists so a failed request can be retried with the
// same file.
type Cleaner struct {
	dir    string
	maxAge time.Duration
	ticker *time.Ticker
	done   chan struct{}
}

func NewCleaner(dir string, maxAge, interval time.Duration) *Cleaner {
	if maxAge == 0 {
		maxAge = 24 * time.Hour
	}
	if interval == 0 {
		interval = time.Hour
	}

	return &Cleaner{
		dir:    dir,
		maxAge: maxAge,
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
}

func (c *Cleaner) Start() {
	go func() {
		for {
			select {
			case <-c.ticker.C:
				c.Sweep()
			case <-c.done:
				return
			}
		}
	}()
}

func (c *Cleaner) Stop() {
	c.ticker.Stop()
	close(c.done)
}

// Sweep deletes files in the upload directory older than the max age.
// Errors on individual files are logged and skipped.
func (c *Cleaner) Sweep() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read upload directory", zap.String("dir", c.dir), zap.Error(err))
		}
		return
	}

	cutoff := time.Now().Add(-c.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			path := filepath.Join(c.dir, entry.Name())
			if err := os.Remove(path); err != nil {
				logger.Warn("Failed to remove expired upload", zap.String("file", path), zap.Error(err))
				continue
			}
			removed++
			logger.Debug("Cleaned up expired upload", zap.String("file", entry.Name()))
		}
	}

	if removed > 0 {
		metrics.UploadsCleaned.Add(float64(removed))
		logger.Info("Upload directory swept", zap.Int("removed", removed))
	}
}
