package training

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

// Store holds the training examples in memory and persists them to a
// single JSON file. Mutations are serialized by a write lock and the
// whole file is rewritten on every change; readers always see either
// the pre- or post-mutation slice because the slice is replaced, never
// mutated in place.
type Store struct {
	mu       sync.RWMutex
	path     string
	examples []Example
	meta     Metadata
}

// NewStore loads the backing file at path. A missing or unparseable
// file yields an empty store rather than an error, so a fresh
// deployment starts without any seed data present.
func NewStore(path string) *Store {
	s := &Store{
		path: path,
		meta: Metadata{
			Version: "1.0",
			Created: time.Now().UTC().Format(time.RFC3339),
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read training data, starting empty",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return s
	}

	var file dataFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn("Failed to parse training data, starting empty",
			zap.String("path", path),
			zap.Error(err),
		)
		return s
	}

	s.examples = file.Examples
	if file.Metadata.Version != "" {
		s.meta = file.Metadata
	}

	logger.Info("Training data loaded",
		zap.String("path", path),
		zap.Int("examples", len(s.examples)),
	)

	return s
}

// Add stores the example, assigning an id and timestamp when absent,
// and persists the store. The stored example is returned.
func (s *Store) Add(example Example) Example {
	s.mu.Lock()
	defer s.mu.Unlock()

	if example.ID == "" {
		example.ID = NewID()
	}
	if example.Timestamp == "" {
		example.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	examples := make([]Example, 0, len(s.examples)+1)
	examples = append(examples, s.examples...)
	examples = append(examples, example)
	s.examples = examples

	s.persist()

	return example
}

// AddAll appends a batch of examples and persists once. Missing ids
// get an import id (random suffix included, since a batch easily lands
// many inserts in one millisecond). Returns the number stored.
func (s *Store) AddAll(examples []Example) int {
	if len(examples) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)

	merged := make([]Example, 0, len(s.examples)+len(examples))
	merged = append(merged, s.examples...)
	for _, ex := range examples {
		if ex.ID == "" {
			ex.ID = ImportID()
		}
		if ex.Timestamp == "" {
			ex.Timestamp = now
		}
		merged = append(merged, ex)
	}
	s.examples = merged

	s.persist()

	return len(examples)
}

// Remove deletes the example with the given id. It reports whether an
// example was removed; nothing is persisted on a miss.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	examples := make([]Example, 0, len(s.examples))
	for _, ex := range s.examples {
		if ex.ID != id {
			examples = append(examples, ex)
		}
	}

	if len(examples) == len(s.examples) {
		return false
	}

	s.examples = examples
	s.persist()

	return true
}

// List returns the examples in insertion order. The returned slice is
// a snapshot; it is never mutated after being handed out.
func (s *Store) List() []Example {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.examples
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.examples)
}

func (s *Store) Metadata() Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta := s.meta
	meta.TotalExamples = len(s.examples)
	return meta
}

// persist rewrites the backing file. The caller must hold the write
// lock. Write-then-rename keeps concurrent loaders from ever observing
// a partially written file. Failures are logged, not surfaced; the
// in-memory state stays authoritative for the life of the process.
func (s *Store) persist() {
	s.meta.TotalExamples = len(s.examples)

	file := dataFile{
		Examples: s.examples,
		Metadata: s.meta,
	}
	if file.Examples == nil {
		file.Examples = []Example{}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal training data", zap.Error(err))
		return
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		logger.Error("Failed to save training data",
			zap.String("path", s.path),
			zap.Error(err),
		)
	}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".training-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}

// NewID returns a millisecond-epoch id, the format the original data
// files use. Callers doing bulk imports should use ImportID to avoid
// same-millisecond collisions.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ImportID appends a random numeric suffix for bulk inserts that land
// within the same clock tick.
func ImportID() string {
	return NewID() + strconv.Itoa(rand.Intn(10000))
}
