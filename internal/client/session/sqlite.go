package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yigit/alumniconnect/internal/db"
	"github.com/yigit/alumniconnect/internal/migrations"
)

// DBTX is the subset of *sql.DB and *sql.Tx the SQLite storage needs.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStorage keeps entries in the kv table of an embedded database.
type SQLiteStorage struct {
	db DBTX
}

func NewSQLiteStorage(db DBTX) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

// OpenSQLiteStorage opens the database at path and applies the kv migration.
func OpenSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, *sql.DB, error) {
	conn, err := db.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if err := migrations.Up(ctx, conn, migrations.SQLite); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return NewSQLiteStorage(conn), conn, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session entry %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session entry %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete session entry %s: %w", key, err)
	}
	return nil
}
