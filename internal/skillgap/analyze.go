// Package skillgap computes set-difference analytics between a candidate's
// skills and a target's required/optional skills, plus a prioritized
// learning plan.
package skillgap

import (
	"math"
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Analyze partitions the target's required and optional skills into matched
// and missing sets. Comparison is case-insensitive; output lists preserve
// the target's original casing. Percentages are 0 when the corresponding
// skill pool is empty.
func Analyze(profileSkills, required, optional []string) types.SkillGap {
	have := make(map[string]struct{}, len(profileSkills))
	for _, s := range profileSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	gap := types.SkillGap{
		MatchedRequired: []string{},
		MatchedOptional: []string{},
		MissingRequired: []string{},
		MissingOptional: []string{},
	}
	for _, skill := range required {
		if _, ok := have[strings.ToLower(skill)]; ok {
			gap.MatchedRequired = append(gap.MatchedRequired, skill)
		} else {
			gap.MissingRequired = append(gap.MissingRequired, skill)
		}
	}
	for _, skill := range optional {
		if _, ok := have[strings.ToLower(skill)]; ok {
			gap.MatchedOptional = append(gap.MatchedOptional, skill)
		} else {
			gap.MissingOptional = append(gap.MissingOptional, skill)
		}
	}

	gap.RequiredMatchPercentage = percentage(len(gap.MatchedRequired), len(required))
	gap.TotalMatchPercentage = percentage(
		len(gap.MatchedRequired)+len(gap.MatchedOptional),
		len(required)+len(optional),
	)
	return gap
}

// percentage returns matched/total*100 rounded to two decimals, or 0 for an
// empty pool (never divide-by-zero).
func percentage(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(total)*10000) / 100
}
