package session

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/config"
	"github.com/yigit/alumniconnect/internal/db"
	"github.com/yigit/alumniconnect/internal/pkg/helpers"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// OpenStorage builds the Storage selected by the session section of cfg.
// The returned closer releases the underlying connection.
func OpenStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Storage, io.Closer, error) {
	sc := cfg.Session
	switch sc.Driver {
	case config.SessionDriverMemory:
		return NewMemoryStorage(), nopCloser, nil

	case config.SessionDriverSQLite:
		storage, conn, err := OpenSQLiteStorage(ctx, sc.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("path", sc.SQLitePath).Msg("Session storage ready (sqlite)")
		return storage, conn, nil

	case config.SessionDriverPostgres:
		pool, err := db.OpenPostgres(ctx, sc.PostgresDSN, db.PoolOptions{MaxConns: 4}, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info().Msg("Session storage ready (postgres)")
		return NewPostgresStorage(pool), closerFunc(func() error { pool.Close(); return nil }), nil

	case config.SessionDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPassword,
			DB:       sc.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		ttl := helpers.ParseDuration(sc.TTL, 0)
		logger.Info().Str("addr", sc.RedisAddr).Dur("ttl", ttl).Msg("Session storage ready (redis)")
		return NewRedisStorage(client, sc.KeyPrefix, ttl), client, nil

	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", sc.Driver)
	}
}
