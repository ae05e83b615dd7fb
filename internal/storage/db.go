// ABOUTME: SQLite connection lifecycle for the daily-record store.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// connPragmas ride on the DSN so every connection the pool opens gets
// them, not just the first. WAL keeps a CLI write from blocking an MCP
// read of the same file; the busy timeout covers the handoff.
var connPragmas = []string{
	"journal_mode(WAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
}

// DB is the SQLite-backed Repository.
type DB struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the database at the given path and ensures the
// schema is current.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &DB{db: db, dbPath: dbPath}
	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	// The file exists after the schema statements ran; it holds health
	// data, so keep it owner-only.
	if err := os.Chmod(dbPath, 0600); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	return d, nil
}

// dsn renders the path plus per-connection pragmas in the _pragma query
// form the modernc driver understands.
func dsn(dbPath string) string {
	return "file:" + dbPath + "?_pragma=" + strings.Join(connPragmas, "&_pragma=")
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault() (*DB, error) {
	return Open(DefaultDBPath())
}

// DataDir returns the XDG data directory for this tool.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vitals")
}

// DefaultDBPath returns the database path inside DataDir.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "vitals.db")
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
