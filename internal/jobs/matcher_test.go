package jobs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

func seniorProfile() *types.Profile {
	return &types.Profile{
		Skills:     []string{"Go", "PostgreSQL", "Kubernetes", "Docker"},
		TargetRole: "Backend Engineer",
		Experience: []types.ExperienceEntry{
			{Title: "Backend Engineer"}, {Title: "Backend Engineer"},
			{Title: "Software Engineer"}, {Title: "Software Engineer"},
			{Title: "Junior Developer"},
		},
	}
}

func sampleCorpus() []types.Job {
	corpus := make([]types.Job, 0, 10)
	for i := 0; i < 7; i++ {
		corpus = append(corpus, types.Job{
			ID:              fmt.Sprintf("entry-%d", i),
			Title:           "Junior Frontend Developer",
			Company:         "Acme",
			Location:        "Austin, TX",
			WorkType:        "On-site",
			JobType:         "Full-time",
			ExperienceLevel: "Entry",
			SkillsRequired:  []string{"JavaScript", "CSS"},
			Description:     "Build user interfaces",
			SalaryMin:       60000,
		})
	}
	corpus = append(corpus,
		types.Job{
			ID: "senior-go", Title: "Senior Backend Engineer", Company: "Initech",
			Location: "Remote", WorkType: "Remote", JobType: "Full-time",
			ExperienceLevel: "Senior",
			SkillsRequired:  []string{"Go", "PostgreSQL", "Kubernetes"},
			Description:     "Design and operate backend services in Go",
			SalaryMin:       150000,
		},
		types.Job{
			ID: "senior-data", Title: "Senior Data Engineer", Company: "Hooli",
			Location: "New York, NY", WorkType: "Hybrid", JobType: "Full-time",
			ExperienceLevel: "Senior",
			SkillsRequired:  []string{"Python", "Spark", "Airflow"},
			Description:     "Own the data platform",
			SalaryMin:       140000,
		},
		types.Job{
			ID: "senior-sre", Title: "Senior Site Reliability Engineer", Company: "Globex",
			Location: "Remote", WorkType: "Remote", JobType: "Full-time",
			ExperienceLevel: "Senior",
			SkillsRequired:  []string{"Kubernetes", "Docker", "Terraform"},
			Description:     "Keep production healthy",
			SalaryMin:       145000,
		},
	)
	return corpus
}

func TestMatchAppliesFiltersBeforeScoring(t *testing.T) {
	m := NewMatcher(nil)
	filters := &types.JobFilters{ExperienceLevel: "Senior"}

	matches := m.Match(seniorProfile(), sampleCorpus(), filters, 20)
	require.Len(t, matches, 3)

	for _, match := range matches {
		assert.Equal(t, "Senior", match.ExperienceLevel)
	}
	assert.Equal(t, "senior-go", matches[0].ID)
}

func TestMatchOrderedAndBounded(t *testing.T) {
	m := NewMatcher(nil)

	matches := m.Match(seniorProfile(), sampleCorpus(), &types.JobFilters{}, 20)
	require.Len(t, matches, 10)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
	for _, match := range matches {
		assert.GreaterOrEqual(t, match.MatchScore, 0.0)
		assert.LessOrEqual(t, match.MatchScore, 100.0)
	}
}

func TestMatchClampsTopK(t *testing.T) {
	m := NewMatcher(nil)
	corpus := sampleCorpus()

	matches := m.Match(seniorProfile(), corpus, nil, 0)
	assert.Len(t, matches, MinMatches)

	matches = m.Match(seniorProfile(), corpus, nil, 3)
	assert.Len(t, matches, 3)
}

func TestMatchEmptyCorpusAfterFilters(t *testing.T) {
	m := NewMatcher(nil)
	filters := &types.JobFilters{Location: "Tokyo"}

	matches := m.Match(seniorProfile(), sampleCorpus(), filters, 20)
	require.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchDeterministic(t *testing.T) {
	m := NewMatcher(nil)
	corpus := sampleCorpus()
	p := seniorProfile()

	first := m.Match(p, corpus, nil, 20)
	second := m.Match(p, corpus, nil, 20)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].MatchScore, second[i].MatchScore)
	}
}

func TestMatchEmptyProfileStillRanksByBonuses(t *testing.T) {
	m := NewMatcher(nil)

	matches := m.Match(&types.Profile{}, sampleCorpus(), nil, 20)
	require.Len(t, matches, 10)

	// No text signal, but rule bonuses still rank: zero experience entries
	// fall in the Entry bracket, so entry postings top the list.
	assert.Equal(t, "Entry", matches[0].ExperienceLevel)
	assert.Equal(t, 10.0, matches[0].MatchScore)
	assert.Equal(t, "Senior", matches[len(matches)-1].ExperienceLevel)
}
