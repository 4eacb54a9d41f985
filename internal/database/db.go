package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

// EnsureSchema creates the journal tables when they are missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS crawl_runs (
			id UUID PRIMARY KEY,
			start_url TEXT NOT NULL,
			pages_captured INT NOT NULL DEFAULT 0,
			products_exported INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			finished_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS products (
			product_code TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			manufacturer TEXT NOT NULL DEFAULT '',
			product_url TEXT NOT NULL DEFAULT '',
			listing_image_url TEXT NOT NULL DEFAULT '',
			has_wifi_connection BOOLEAN NOT NULL DEFAULT FALSE,
			mains_voltage TEXT NOT NULL DEFAULT '',
			internal_unit_length TEXT NOT NULL DEFAULT '',
			heating_noise_level TEXT NOT NULL DEFAULT '',
			cooling_noise_level TEXT NOT NULL DEFAULT '',
			heating_energy_class TEXT NOT NULL DEFAULT '',
			cooling_energy_class TEXT NOT NULL DEFAULT '',
			heating_btu_capacity TEXT NOT NULL DEFAULT '',
			cooling_btu_capacity TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`

	if _, err := db.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
