// Package store persists the save record. Two backends share the
// sim.Store contract: a JSON file and a SQLite database.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tinpet/internal/sim"
)

// JSONStore keeps the record in a single JSON document. Writes go to a
// temp file first and rename into place, so a crash mid-write never
// leaves a truncated save behind.
type JSONStore struct {
	path string
}

// NewJSONStore creates the parent directory if needed.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating save directory: %w", err)
		}
	}
	return &JSONStore{path: path}, nil
}

// Load reads the record. The second return is false when no save exists
// yet. The document is unmarshalled over a fresh default record, so
// fields missing from older saves keep their defaults.
func (s *JSONStore) Load() (*sim.State, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading save file: %w", err)
	}

	state := sim.DefaultState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, false, fmt.Errorf("parsing save file: %w", err)
	}
	return state, true, nil
}

// Save writes the record atomically.
func (s *JSONStore) Save(state *sim.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing save file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between writes.
func (s *JSONStore) Close() error { return nil }
