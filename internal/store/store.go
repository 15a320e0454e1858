package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"smsledger/internal/models"
)

// AppDataKey is the single key the whole application state lives under.
const AppDataKey = "appData"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// Store persists AppData as one JSON blob in a SQLite key/value table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored AppData, or nil when nothing has been saved yet.
func (s *Store) Load(ctx context.Context) (*models.AppData, error) {
	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, AppDataKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", AppDataKey, err)
	}

	var data models.AppData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", AppDataKey, err)
	}
	return &data, nil
}

// Save replaces the stored AppData.
func (s *Store) Save(ctx context.Context, data *models.AppData) error {
	data.UpdatedAt = time.Now().UTC()
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", AppDataKey, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		AppDataKey, string(blob))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", AppDataKey, err)
	}
	return nil
}

// Clear removes the stored AppData.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, AppDataKey); err != nil {
		return fmt.Errorf("failed to clear %s: %w", AppDataKey, err)
	}
	return nil
}
