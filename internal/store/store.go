// Package store provides PostgreSQL persistence for job corpora and saved
// profiles. It is optional: the CLI falls back to JSON files when no
// database URL is configured.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id               TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			company          TEXT NOT NULL DEFAULT '',
			location         TEXT NOT NULL DEFAULT '',
			work_type        TEXT NOT NULL DEFAULT '',
			job_type         TEXT NOT NULL DEFAULT '',
			experience_level TEXT NOT NULL DEFAULT '',
			skills_required  JSONB NOT NULL DEFAULT '[]',
			description      TEXT NOT NULL DEFAULT '',
			requirements     JSONB NOT NULL DEFAULT '[]',
			responsibilities JSONB NOT NULL DEFAULT '[]',
			salary_min       INTEGER NOT NULL DEFAULT 0,
			salary_max       INTEGER NOT NULL DEFAULT 0,
			posted_date      TEXT NOT NULL DEFAULT '',
			url              TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS profiles (
			name       TEXT PRIMARY KEY,
			profile    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
