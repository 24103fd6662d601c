package ladder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store persists the ladder state as a single JSON document. Writes go to a
// temporary file followed by a rename so a crash mid-write never leaves a
// truncated document behind.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a store writing to the given path.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.Named("ladder_store"),
	}
}

// Load reads the persisted state. A missing or unreadable document yields a
// fresh empty state rather than an error, matching a first run.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("No ladder data file found, starting fresh", zap.String("path", s.path))

		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ladder data: %w", err)
	}

	st := NewState()
	if err := json.Unmarshal(data, st); err != nil {
		s.logger.Warn("Ladder data file is corrupted, starting fresh",
			zap.String("path", s.path), zap.Error(err))

		return NewState(), nil
	}
	if st.Rule == "" {
		st.Rule = RuleSwapOnly
	}

	return st, nil
}

// Save writes the state atomically.
func (s *Store) Save(st *State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ladder data: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ladder data: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace ladder data: %w", err)
	}

	return nil
}
