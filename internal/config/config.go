// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags. Environment variables (HIRESKILL_*) override file values.
type Config struct {
	// Paths
	JobsFile    string `json:"jobs_file,omitempty"`    // Path to a JSON job corpus
	ProfileFile string `json:"profile_file,omitempty"` // Path to a JSON profile
	WeightsFile string `json:"weights_file,omitempty"` // Path to a YAML rule-weights override

	// Matching defaults
	TopCareers int `json:"top_careers,omitempty" validate:"gte=0,lte=15"`
	TopJobs    int `json:"top_jobs,omitempty" validate:"gte=0,lte=100"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`     // Debug logging
	DatabaseURL string `json:"database_url,omitempty"`
}

var validate = validator.New()

// Load reads configuration from a JSON file and applies environment
// overrides. An empty path returns a config built from the environment
// alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays HIRESKILL_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("HIRESKILL_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("HIRESKILL_JOBS_FILE"); v != "" {
		c.JobsFile = v
	}
	if v := os.Getenv("HIRESKILL_WEIGHTS_FILE"); v != "" {
		c.WeightsFile = v
	}
	if v := os.Getenv("HIRESKILL_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
	if v := os.Getenv("HIRESKILL_USE_BROWSER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UseBrowser = b
		}
	}
}

// Validate checks ranges and that referenced files exist.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for name, p := range map[string]string{
		"jobs_file":    c.JobsFile,
		"profile_file": c.ProfileFile,
		"weights_file": c.WeightsFile,
	} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", name, p)
		}
	}
	return nil
}
