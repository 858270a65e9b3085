// Package db opens the gorm connection pool and prepares the schema.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrUnsupportedDriver is returned for a Config.Driver outside mysql, postgres and sqlite.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// retryInterval is the pause between connection attempts in ConnectWithRetry.
var retryInterval = 3 * time.Second

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

func newGormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func dialector(driver, dsn string, lazy bool) (gorm.Dialector, error) {
	switch driver {
	case DriverMySQL, "":
		// Skipping the version probe keeps gorm.Open from touching the server.
		return gmysql.New(gmysql.Config{DSN: dsn, SkipInitializeWithVersion: lazy}), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// NewOpener returns an Opener that connects eagerly (gorm pings on open).
func NewOpener(driver string) Opener {
	return func(dsn string) (*gorm.DB, error) {
		d, err := dialector(driver, dsn, false)
		if err != nil {
			return nil, err
		}
		return gorm.Open(d, newGormConfig())
	}
}

// Open builds the request pool without contacting the server. A database that
// is down at startup only fails the requests that need it.
func Open(cfg Config) (*gorm.DB, error) {
	d, err := dialector(cfg.Driver, BuildDSN(cfg), true)
	if err != nil {
		return nil, err
	}

	gcfg := newGormConfig()
	gcfg.DisableAutomaticPing = true
	db, err := gorm.Open(d, gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}

// ConnectWithRetry calls opener until it succeeds, timeout elapses, or ctx is done.
func ConnectWithRetry(ctx context.Context, dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("db connect aborted: %w", err)
		}
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if errors.Is(err, ErrUnsupportedDriver) {
			return nil, err
		}
		wait := time.Until(deadline)
		if wait <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		wait = min(wait, retryInterval)
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("db connect aborted: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

// Close releases the pool behind db.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access connection pool", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}
