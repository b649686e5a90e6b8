// Package db opens the SQL databases that back persistent sessions.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// PoolOptions tunes a PostgreSQL pool. Zero values keep the pgxpool defaults.
type PoolOptions struct {
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	// ConnectAttempts bounds the initial ping. Defaults to 3.
	ConnectAttempts int
	// RetryDelay doubles after every failed attempt. Defaults to 500ms.
	RetryDelay      time.Duration
}

// OpenPostgres creates a pool for dsn and waits until the server answers.
// Queries that fail are logged through logger at warn level.
func OpenPostgres(ctx context.Context, dsn string, opts PoolOptions, logger zerolog.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		cfg.MinConns = opts.MinConns
	}
	if opts.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = opts.ConnMaxLifetime
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   queryLogger(logger.With().Str("component", "postgres").Logger()),
		LogLevel: tracelog.LogLevelWarn,
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := ping(ctx, pool, opts, logger); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func ping(ctx context.Context, pool *pgxpool.Pool, opts PoolOptions, logger zerolog.Logger) error {
	attempts := opts.ConnectAttempts
	if attempts <= 0 {
		attempts = 3
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	var err error
	for i := 1; ; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil || i == attempts {
			break
		}
		logger.Warn().Err(err).Int("attempt", i).Dur("retryIn", delay).Msg("PostgreSQL not reachable yet")
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	if err != nil {
		return fmt.Errorf("connect to postgres after %d attempts: %w", attempts, err)
	}
	return nil
}

// queryLogger adapts zerolog to the pgx tracer.
func queryLogger(logger zerolog.Logger) tracelog.Logger {
	return tracelog.LoggerFunc(func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		var ev *zerolog.Event
		switch level {
		case tracelog.LogLevelError:
			ev = logger.Error()
		case tracelog.LogLevelWarn:
			ev = logger.Warn()
		case tracelog.LogLevelInfo:
			ev = logger.Info()
		default:
			ev = logger.Debug()
		}
		ev.Fields(data).Msg(msg)
	})
}
