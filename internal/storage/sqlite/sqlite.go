// Package sqlite provides a SQLite-backed implementation of the
// storage.SnapshotStore and storage.ResourceStore interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

// Ensure SQLiteStore implements both storage interfaces
var (
	_ storage.SnapshotStore = (*SQLiteStore)(nil)
	_ storage.ResourceStore = (*SQLiteStore)(nil)
)

// SQLiteStore implements the storage interfaces using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Writers would otherwise race for the lock with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the collection snapshot.
func (s *SQLiteStore) Load(ctx context.Context) (models.Collection, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM snapshots WHERE key = ?",
		storage.SnapshotKey,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var c models.Collection
	if err := json.Unmarshal(blob, &c); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return c, nil
}

// Save writes the collection snapshot, replacing any previous one.
func (s *SQLiteStore) Save(ctx context.Context, c models.Collection) error {
	if c == nil {
		c = models.Collection{}
	}
	blob, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		storage.SnapshotKey, blob, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
