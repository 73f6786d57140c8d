// Package settings persists user preferences across sessions.
//
// The store is a single key/value table in SQLite. Every mutating
// operation in the app writes its key immediately; there is no batching.
// A missing or malformed value never fails a read: callers always get
// the in-code default back.
package settings

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "aria"
	dbFileName = "aria.db"
)

// Keys used in the settings table.
const (
	keyVolume         = "volume"
	keyRepeatMode     = "repeatMode"
	keyFavorites      = "favorites"
	keyRecentlyPlayed = "recentlyPlayed"
	keyPlaylists      = "playlists"
)

// Store reads and writes persisted settings.
type Store struct {
	db *sql.DB
}

// Open opens the settings database in the user data directory,
// creating it if needed.
func Open() (*Store, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return openPath(dbPath)
}

func openPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get returns the raw value for key, with ok=false when the key is absent.
func (s *Store) get(key string) (value string, ok bool, err error) {
	row := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key)
	err = row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// set writes the raw value for key, replacing any previous value.
func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
