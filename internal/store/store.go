package store

import (
	"path/filepath"
	"strings"

	"tinpet/internal/sim"
)

// Open picks a backend for the given path. An explicit backend name
// wins; otherwise the file extension decides, with JSON as the default.
func Open(path, backend string) (sim.Store, error) {
	switch strings.ToLower(backend) {
	case "sqlite":
		return NewSQLiteStore(path)
	case "json":
		return NewJSONStore(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path)
	default:
		return NewJSONStore(path)
	}
}
