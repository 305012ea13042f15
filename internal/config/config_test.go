package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidJSON(t *testing.T) {
	jobs := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(jobs, []byte(`[]`), 0644))

	content := `{
		"jobs_file": "` + jobs + `",
		"top_careers": 5,
		"top_jobs": 50,
		"verbose": true
	}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, jobs, cfg.JobsFile)
	assert.Equal(t, 5, cfg.TopCareers)
	assert.Equal(t, 50, cfg.TopJobs)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPathUsesEnvironment(t *testing.T) {
	t.Setenv("HIRESKILL_DATABASE_URL", "postgres://localhost/hireskill")
	t.Setenv("HIRESKILL_VERBOSE", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/hireskill", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	content := `{"database_url": "postgres://file/db"}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	t.Setenv("HIRESKILL_DATABASE_URL", "postgres://env/db")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}

func TestValidate_RangeViolation(t *testing.T) {
	cfg := &Config{TopCareers: 99}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestValidate_MissingReferencedFile(t *testing.T) {
	cfg := &Config{JobsFile: "/nonexistent/jobs.json"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs_file not found")
}
