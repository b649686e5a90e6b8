// Package migrations embeds the goose migrations of the session key-value table.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "pgx"
)

func (d Dialect) dir() (string, error) {
	switch d {
	case SQLite:
		return "sqlite", nil
	case Postgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", d)
	}
}

// FS returns the migrations for d.
func FS(d Dialect) (fs.FS, error) {
	dir, err := d.dir()
	if err != nil {
		return nil, err
	}
	return fs.Sub(files, dir)
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies every pending migration of d to db.
func Up(ctx context.Context, db *sql.DB, d Dialect) error {
	sub, err := FS(d)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(string(d)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run %s migrations: %w", d, err)
	}
	return nil
}
