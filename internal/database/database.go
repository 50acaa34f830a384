// Package database centralises sqlx connection helpers.  The default driver
// is go-sql-driver/mysql, which also works with MariaDB and Cockroach when
// configured for the MySQL wire protocol.
//
// Public entry points:
//
//	Open(dsn)                               – helper with conservative pool sizes.
//	OpenWithOptions(ctx, dsn, Options)      – fine-grained control plus retry.
//	Migrate(ctx, db, stmts)                 – run idempotent DDL in order.
//
// The open helpers Ping the database before returning so callers can fail
// fast during bootstrap.  Callers should Close() the returned *sqlx.DB when
// no longer needed.
package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Options tunes the pool and the initial connection attempt.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Retries         int           // extra Ping attempts after the first
	RetryBackoff    time.Duration // sleep between attempts
}

// Open returns a *sqlx.DB with sane defaults: 15 max open, 5 idle, and a
// 30-minute connection lifetime.
func Open(dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(context.Background(), dsn, Options{
		MaxOpenConns:    15,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		Retries:         2,
		RetryBackoff:    500 * time.Millisecond,
	})
}

// OpenWithOptions opens the pool and pings it, retrying transient failures.
func OpenWithOptions(ctx context.Context, dsn string, o Options) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(o.MaxOpenConns)
	db.SetMaxIdleConns(o.MaxIdleConns)
	db.SetConnMaxLifetime(o.ConnMaxLifetime)

	for attempt := 0; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if attempt >= o.Retries {
			break
		}
		zap.S().Warnw("database ping failed, retrying", "attempt", attempt+1, "err", err)
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(o.RetryBackoff):
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", err)
}

// Migrate executes each statement in order.  Statements must be idempotent
// (CREATE TABLE IF NOT EXISTS …) because they run on every boot.
func Migrate(ctx context.Context, db *sqlx.DB, stmts []string) error {
	for i, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
