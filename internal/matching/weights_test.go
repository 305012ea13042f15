package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 0.3, w.SkillOverlap, 1e-9)
	assert.InDelta(t, 0.1, w.ExperienceLevel, 1e-9)
	assert.InDelta(t, 0.05, w.WorkType, 1e-9)
	assert.InDelta(t, 0.15, w.TitleMatch, 1e-9)
	assert.NoError(t, w.Validate())
}

func TestLoadWeights_PartialOverride(t *testing.T) {
	path := writeRulesFile(t, "skill_overlap: 0.5\ntitle_match: 0.2\n")

	w, err := LoadWeights(path)

	require.NoError(t, err)
	assert.InDelta(t, 0.5, w.SkillOverlap, 1e-9)
	assert.InDelta(t, 0.2, w.TitleMatch, 1e-9)
	// Unspecified weights inherit defaults.
	assert.InDelta(t, 0.1, w.ExperienceLevel, 1e-9)
	assert.InDelta(t, 0.05, w.WorkType, 1e-9)
}

func TestLoadWeights_OutOfRangeRejected(t *testing.T) {
	path := writeRulesFile(t, "skill_overlap: 1.5\n")

	w, err := LoadWeights(path)

	assert.Error(t, err)
	// Falls back to defaults on invalid input.
	assert.InDelta(t, 0.3, w.SkillOverlap, 1e-9)
}

func TestLoadWeights_MissingFile(t *testing.T) {
	_, err := LoadWeights(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadWeights_MalformedYAML(t *testing.T) {
	path := writeRulesFile(t, "skill_overlap: [not a number\n")

	_, err := LoadWeights(path)

	assert.Error(t, err)
}
