package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

func TestApplyFiltersNilAndZeroPassThrough(t *testing.T) {
	corpus := sampleCorpus()

	assert.Len(t, ApplyFilters(corpus, nil), len(corpus))
	assert.Len(t, ApplyFilters(corpus, &types.JobFilters{}), len(corpus))
	assert.Len(t, ApplyFilters(corpus, &types.JobFilters{Location: "Any"}), len(corpus))
}

func TestApplyFiltersLocationSubstring(t *testing.T) {
	corpus := sampleCorpus()

	austin := ApplyFilters(corpus, &types.JobFilters{Location: "austin"})
	require.NotEmpty(t, austin)
	for _, job := range austin {
		assert.Equal(t, "Austin, TX", job.Location)
	}

	assert.Empty(t, ApplyFilters(corpus, &types.JobFilters{Location: "Tokyo"}))
}

func TestApplyFiltersCombined(t *testing.T) {
	corpus := sampleCorpus()

	eligible := ApplyFilters(corpus, &types.JobFilters{
		ExperienceLevel: "senior",
		WorkType:        "remote",
		MinSalary:       145000,
	})
	require.Len(t, eligible, 2)
	assert.Equal(t, "senior-go", eligible[0].ID)
	assert.Equal(t, "senior-sre", eligible[1].ID)
}

func TestApplyFiltersMinSalary(t *testing.T) {
	corpus := sampleCorpus()

	eligible := ApplyFilters(corpus, &types.JobFilters{MinSalary: 100000})
	require.Len(t, eligible, 3)
	for _, job := range eligible {
		assert.GreaterOrEqual(t, job.SalaryMin, 100000)
	}
}
