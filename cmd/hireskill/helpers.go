package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sakib9797/Hire-Skill/internal/matching"
	"github.com/Sakib9797/Hire-Skill/internal/schemas"
	"github.com/Sakib9797/Hire-Skill/internal/store"
	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// loadProfile reads and schema-validates a profile JSON file.
func loadProfile(path string) (*types.Profile, error) {
	if path == "" {
		path = cfg.ProfileFile
	}
	if path == "" {
		return nil, fmt.Errorf("no profile given: pass --profile or set profile_file in config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := schemas.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &profile, nil
}

// loadJobs reads the job corpus from the database when configured, or from
// a schema-validated JSON file otherwise.
func loadJobs(ctx context.Context, path string) ([]types.Job, error) {
	if path == "" {
		path = cfg.JobsFile
	}
	if path == "" && cfg.DatabaseURL != "" {
		return loadJobsFromStore(ctx)
	}
	if path == "" {
		return nil, fmt.Errorf("no job corpus: pass --jobs, set jobs_file, or configure database_url")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	if err := schemas.ValidateJobs(data); err != nil {
		return nil, fmt.Errorf("invalid job corpus %s: %w", path, err)
	}

	var jobs []types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	for i := range jobs {
		jobs[i].Normalize()
	}
	return jobs, nil
}

func loadJobsFromStore(ctx context.Context) ([]types.Job, error) {
	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.ListJobs(ctx)
}

// loadWeights returns rule weights, applying a YAML override when one is
// configured or passed.
func loadWeights(path string) (*matching.Weights, error) {
	if path == "" {
		path = cfg.WeightsFile
	}
	if path == "" {
		w := matching.DefaultWeights()
		return &w, nil
	}
	w, err := matching.LoadWeights(path)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// writeJSON marshals v with indentation to path, creating parent
// directories, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(out))
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// saveJobsToStore persists postings when a database is configured.
func saveJobsToStore(ctx context.Context, jobs []types.Job) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database_url configured")
	}
	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	return db.SaveJobs(ctx, jobs)
}
