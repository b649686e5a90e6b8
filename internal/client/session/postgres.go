package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/yigit/alumniconnect/internal/migrations"
	"github.com/yigit/alumniconnect/internal/pkg/dberrors"
)

// Querier is the part of *pgxpool.Pool the Postgres storage uses.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStorage keeps entries in the kv table of a PostgreSQL database.
type PostgresStorage struct {
	db Querier
	sb squirrel.StatementBuilderType
}

func NewPostgresStorage(db Querier) *PostgresStorage {
	return &PostgresStorage{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// MigratePostgres applies the kv migration through the pool.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	conn := stdlib.OpenDBFromPool(pool)
	defer conn.Close()
	return migrations.Up(ctx, conn, migrations.Postgres)
}

func (s *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.sb.Select("value").
		From("kv").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build session query: %w", err)
	}

	var value string
	err = s.db.QueryRow(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		return "", dberrors.Wrap("get session entry "+key, err)
	}
	return value, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := s.sb.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session upsert: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return dberrors.Wrap("set session entry "+key, err)
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	query, args, err := s.sb.Delete("kv").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session delete: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return dberrors.Wrap("delete session entry "+key, err)
	}
	return nil
}
