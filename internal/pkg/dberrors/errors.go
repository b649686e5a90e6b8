// Package dberrors classifies PostgreSQL driver errors.
package dberrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Failure classes
var (
	ErrSchemaMissing = errors.New("table is missing, run the migrations")
	ErrUnavailable   = errors.New("database unavailable")
)

const (
	codeUndefinedTable = "42P01"
	// class 08 is connection exceptions
	classConnection = "08"
)

// Wrap annotates err with op and, when it recognises the failure, one of the
// failure classes so callers can test for it with errors.Is.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if class := classify(err); class != nil {
		return fmt.Errorf("%s: %w: %w", op, class, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUndefinedTable:
			return ErrSchemaMissing
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == classConnection:
			return ErrUnavailable
		}
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return ErrUnavailable
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrUnavailable
	}
	return nil
}
