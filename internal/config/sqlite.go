package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens the embedded SQLite store and creates its tables.
// SQLite has a single writer, so the pool is capped at one connection.
func OpenSQLite(ctx context.Context, cfg DatabaseConfig, log zerolog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.SQLiteDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := AutoMigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("path", cfg.Path).Msg("opened SQLite database")
	return db, nil
}

// AutoMigrateSQLite creates tables if they don't exist
func AutoMigrateSQLite(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS "user" (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		username          VARCHAR(100) NOT NULL UNIQUE,
		password          TEXT NOT NULL,
		registration_time INTEGER NOT NULL -- unix seconds
	);

	CREATE TABLE IF NOT EXISTS advertisements (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		header      TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		created_at  INTEGER NOT NULL, -- unix seconds
		owner_id    INTEGER NOT NULL REFERENCES "user" (id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_advertisements_owner_id ON advertisements (owner_id);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("unable to apply sqlite schema: %w", err)
	}
	return nil
}
