// Package storage persists the reminder state in an embedded Badger
// store. Every record is a JSON value under a prefixed key.
package storage

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"
)

// AppName is the application name used for data directories.
const AppName = "nudge"

// DB wraps a Badger database connection.
type DB struct {
	db *badger.DB
}

// DefaultPath returns the default database directory under the XDG
// data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens the store rooted at dir, creating the directory if
// needed.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a store that lives only for the process. Used by
// tests and the ":memory:" database override.
func OpenInMemory() (*DB, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*DB, error) {
	// Badger is chatty at INFO; the CLI only wants real failures.
	db, err := badger.Open(opts.WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}
