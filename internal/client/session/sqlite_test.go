package session

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T, path string) *SQLiteStorage {
	t.Helper()
	storage, conn, err := OpenSQLiteStorage(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return storage
}

func TestSQLiteStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t, ":memory:")

	_, err := s.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyToken, "old"))
	require.NoError(t, s.Set(ctx, KeyToken, "new"))

	v, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	require.NoError(t, s.Delete(ctx, KeyToken))
	_, err = s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is fine
	require.NoError(t, s.Delete(ctx, KeyToken))
}

func TestSQLiteStorage_SessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	storage, conn, err := OpenSQLiteStorage(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewStore(storage, zerolog.Nop()).Login(ctx, alice(), "token-1"))
	require.NoError(t, conn.Close())

	restored := NewStore(openSQLite(t, path), zerolog.Nop())
	restored.Restore(ctx)
	require.True(t, restored.IsAuthenticated())
	assert.Equal(t, "alumni-1", restored.User().ID)
	assert.Equal(t, "token-1", restored.Token())
}

func TestSQLiteStorage_WrapsDriverErrors(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	disk := errors.New("disk I/O error")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = ?`)).
		WithArgs(KeyUser).
		WillReturnError(disk)
	mock.ExpectExec(`INSERT INTO kv`).
		WithArgs(KeyUser, "{}").
		WillReturnError(disk)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = ?`)).
		WithArgs(KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewSQLiteStorage(conn)
	ctx := context.Background()

	_, err = s.Get(ctx, KeyUser)
	assert.ErrorIs(t, err, disk)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Set(ctx, KeyUser, "{}"), disk)
	assert.NoError(t, s.Delete(ctx, KeyUser))

	require.NoError(t, mock.ExpectationsWereMet())
}
