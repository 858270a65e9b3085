package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"interview_backend/internal/feature/account/domain/entity"
)

// EnsureSchema creates the configured database and the users table when they
// are missing. It is safe to run on every start.
func EnsureSchema(ctx context.Context, cfg Config, opener Opener) error {
	if err := ensureDatabase(ctx, cfg, opener); err != nil {
		return err
	}

	db, err := ConnectWithRetry(ctx, BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return fmt.Errorf("failed to connect to database %q: %w", cfg.Name, err)
	}
	defer Close(db)

	return CreateUsersTable(ctx, db)
}

// ensureDatabase connects without selecting a database and creates it.
// SQLite creates the file on open, so there is nothing to do.
func ensureDatabase(ctx context.Context, cfg Config, opener Opener) error {
	if cfg.Driver == DriverSQLite {
		return nil
	}

	server, err := ConnectWithRetry(ctx, BuildServerDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer Close(server)

	tx := server.WithContext(ctx)
	if cfg.Driver == DriverPostgres {
		// PostgreSQL has no CREATE DATABASE IF NOT EXISTS.
		var exists bool
		if err := tx.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", cfg.Name).
			Scan(&exists).Error; err != nil {
			return fmt.Errorf("failed to look up database %q: %w", cfg.Name, err)
		}
		if exists {
			return nil
		}
		if err := tx.Exec("CREATE DATABASE " + quoteIdent(cfg.Name, `"`)).Error; err != nil {
			return fmt.Errorf("failed to create database %q: %w", cfg.Name, err)
		}
		return nil
	}

	if err := tx.Exec("CREATE DATABASE IF NOT EXISTS " + quoteIdent(cfg.Name, "`")).Error; err != nil {
		return fmt.Errorf("failed to create database %q: %w", cfg.Name, err)
	}
	return nil
}

// CreateUsersTable creates the users table unless it already exists.
func CreateUsersTable(ctx context.Context, db *gorm.DB) error {
	m := db.WithContext(ctx).Migrator()
	if m.HasTable(&entity.User{}) {
		return nil
	}
	if err := m.CreateTable(&entity.User{}); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// quoteIdent wraps name in q, doubling any q inside it.
func quoteIdent(name, q string) string {
	return q + strings.ReplaceAll(name, q, q+q) + q
}
