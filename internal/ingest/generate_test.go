package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleJobsCount(t *testing.T) {
	jobs, err := GenerateSampleJobs(50, "", 1)
	require.NoError(t, err)
	require.Len(t, jobs, 50)

	for _, job := range jobs {
		assert.NotEmpty(t, job.ID)
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Company)
		assert.NotEmpty(t, job.SkillsRequired)
		assert.NotEmpty(t, job.Description)
		assert.Greater(t, job.SalaryMax, job.SalaryMin)
		assert.Contains(t, []string{"Remote", "Hybrid", "On-site"}, job.WorkType)
	}
}

func TestGenerateSampleJobsDeterministic(t *testing.T) {
	first, err := GenerateSampleJobs(20, "", 7)
	require.NoError(t, err)
	second, err := GenerateSampleJobs(20, "", 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSampleJobsFamilyFilter(t *testing.T) {
	jobs, err := GenerateSampleJobs(25, "devops", 3)
	require.NoError(t, err)

	titles := roleTitles["devops"]
	for _, job := range jobs {
		assert.Contains(t, titles, job.Title)
	}
}

func TestGenerateSampleJobsUnknownFamily(t *testing.T) {
	_, err := GenerateSampleJobs(10, "astronaut", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "astronaut")
}

func TestRoleFamilies(t *testing.T) {
	families := RoleFamilies()
	assert.Len(t, families, 5)
	assert.Contains(t, families, "software_engineer")
	assert.Contains(t, families, "security")
}
