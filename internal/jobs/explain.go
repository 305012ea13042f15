package jobs

import (
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/matching"
	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Explain breaks down why a single posting does or does not suit a profile.
// Skill lists preserve the posting's original casing.
func Explain(profile *types.Profile, job *types.Job) *types.MatchExplanation {
	have := make(map[string]struct{}, len(profile.Skills))
	for _, s := range profile.Skills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	for _, s := range job.SkillsRequired {
		if _, ok := have[strings.ToLower(strings.TrimSpace(s))]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	target := strings.ToLower(strings.TrimSpace(profile.TargetRole))
	titleMatch := target != "" && strings.Contains(strings.ToLower(job.Title), target)

	return &types.MatchExplanation{
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExperienceMatch: matching.ExperienceLevelMatches(job.ExperienceLevel, profile.ExperienceCount()),
		TitleMatch:      titleMatch,
	}
}
