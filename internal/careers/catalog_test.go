package careers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEntriesComplete(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 15)

	seen := make(map[string]bool)
	for _, c := range catalog {
		assert.NotEmpty(t, c.Role)
		assert.NotEmpty(t, c.Category)
		assert.NotEmpty(t, c.RequiredSkills, "career %q has no required skills", c.Role)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.AverageSalary)
		assert.NotEmpty(t, c.GrowthRate)
		assert.False(t, seen[c.Role], "duplicate role %q", c.Role)
		seen[c.Role] = true
	}
}

func TestAllSkillsSortedAndUnique(t *testing.T) {
	skills := AllSkills()
	require.NotEmpty(t, skills)

	assert.True(t, sortedStrings(skills))

	seen := make(map[string]bool)
	for _, s := range skills {
		key := strings.ToLower(s)
		assert.False(t, seen[key], "duplicate skill %q", s)
		seen[key] = true
	}

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Kubernetes")
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i-1] > ss[i] {
			return false
		}
	}
	return true
}
