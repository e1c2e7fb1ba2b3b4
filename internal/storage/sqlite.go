package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteBackend implements [Backend] over a single kv table.
//
// The table is created by the shared migrations; callers are expected to run
// them before constructing a backend.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend creates a backend using the given database connection.
func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

// Get returns the value stored under key, or reports absence via the bool.
func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query kv: %w", err)
	}
	return []byte(value), true, nil
}

// Set overwrites the value stored under key.
func (b *SQLiteBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write kv: %w", err)
	}
	return nil
}
