package db

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPostgresRejectsBadDSN(t *testing.T) {
	_, err := OpenPostgres(context.Background(), "postgres://%zz", PoolOptions{}, zerolog.Nop())
	assert.ErrorContains(t, err, "parse postgres dsn")
}

func TestQueryLoggerMapsLevels(t *testing.T) {
	var buf bytes.Buffer
	log := queryLogger(zerolog.New(&buf))

	log.Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "select 1"})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "Query", line["message"])
	assert.Equal(t, "select 1", line["sql"])
}
