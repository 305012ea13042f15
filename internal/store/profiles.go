package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// SaveProfile upserts a named profile as JSONB.
func (s *Store) SaveProfile(ctx context.Context, name string, profile *types.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile %s: %w", name, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (name, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET profile = $2, updated_at = NOW()`,
		name, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", name, err)
	}
	return nil
}

// GetProfile retrieves a named profile, or nil when it does not exist.
func (s *Store) GetProfile(ctx context.Context, name string) (*types.Profile, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM profiles WHERE name = $1`, name,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", name, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", name, err)
	}
	return &profile, nil
}

// ListProfiles returns the stored profile names.
func (s *Store) ListProfiles(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT name FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan profile name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return names, nil
}
