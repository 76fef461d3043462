package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"tinpet/internal/sim"
)

// SQLiteStore keeps the record as a JSON document in a single-row table.
// The schema leaves room for more slots later; slot 1 is the only one
// used today.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS save_slots (
	slot       INTEGER PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);`

const saveSlot = 1

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating save directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the record from slot 1; false when the slot is empty.
func (s *SQLiteStore) Load() (*sim.State, bool, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM save_slots WHERE slot = ?`, saveSlot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying save slot: %w", err)
	}

	state := sim.DefaultState()
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, false, fmt.Errorf("parsing save record: %w", err)
	}
	return state, true, nil
}

// Save upserts the record into slot 1.
func (s *SQLiteStore) Save(state *sim.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO save_slots (slot, data, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		saveSlot, string(data))
	if err != nil {
		return fmt.Errorf("writing save slot: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
