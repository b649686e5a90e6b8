package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFS_ListsMigrationsPerDialect(t *testing.T) {
	for _, d := range []Dialect{SQLite, Postgres} {
		sub, err := FS(d)
		require.NoError(t, err)
		names, err := fs.Glob(sub, "*.sql")
		require.NoError(t, err)
		assert.Equal(t, []string{"00001_create_kv.sql"}, names, d)
	}

	_, err := FS("oracle")
	assert.Error(t, err)
}

func TestUp_SQLiteCreatesKVTable(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db, SQLite))
	// idempotent
	require.NoError(t, Up(ctx, db, SQLite))

	_, err := db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES ('a', 'b')`)
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = 'a'`).Scan(&v))
	assert.Equal(t, "b", v)
}

func TestUp_WrapsGooseError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir
		return boom
	}

	err := Up(context.Background(), openMemory(t), Postgres)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, ".", gotDir)
}
