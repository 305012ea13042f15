package matching

import (
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Rule computes one additive score adjustment for a profile/document pair.
// Rules are independent; evaluation order does not matter.
type Rule[D any] struct {
	Name  string
	Score func(profile *types.Profile, doc D) float64
}

// SkillOverlapRule rewards the fraction of the document's required skills
// the profile already has: (|overlap| / |required|) * weight. Documents with
// no required skills contribute exactly 0.
func SkillOverlapRule[D any](weight float64, required func(D) []string) Rule[D] {
	return Rule[D]{
		Name: "skill_overlap",
		Score: func(profile *types.Profile, doc D) float64 {
			reqSet := lowerSet(required(doc))
			if len(reqSet) == 0 {
				return 0
			}
			profileSet := lowerSet(profile.Skills)
			if len(profileSet) == 0 {
				return 0
			}
			overlap := 0
			for skill := range reqSet {
				if _, ok := profileSet[skill]; ok {
					overlap++
				}
			}
			return float64(overlap) / float64(len(reqSet)) * weight
		},
	}
}

// ExperienceLevelRule rewards a profile whose experience-entry count falls
// in the bracket matching the document's stated level. At most one bracket
// bonus applies per document.
func ExperienceLevelRule[D any](weight float64, level func(D) string) Rule[D] {
	return Rule[D]{
		Name: "experience_level",
		Score: func(profile *types.Profile, doc D) float64 {
			if ExperienceLevelMatches(level(doc), profile.ExperienceCount()) {
				return weight
			}
			return 0
		},
	}
}

// ExperienceLevelMatches reports whether an experience-entry count falls in
// the bracket for a stated level: Entry <=2, Mid 2-5 inclusive, Senior >=5.
func ExperienceLevelMatches(level string, entries int) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "entry":
		return entries <= 2
	case "mid":
		return entries >= 2 && entries <= 5
	case "senior":
		return entries >= 5
	default:
		return false
	}
}

// WorkTypeRule rewards documents whose work type mentions remote or hybrid
// arrangements (case-insensitive substring).
func WorkTypeRule[D any](weight float64, workType func(D) string) Rule[D] {
	return Rule[D]{
		Name: "work_type",
		Score: func(_ *types.Profile, doc D) float64 {
			wt := strings.ToLower(workType(doc))
			if strings.Contains(wt, "remote") || strings.Contains(wt, "hybrid") {
				return weight
			}
			return 0
		},
	}
}

// TitleMatchRule rewards documents whose title contains the profile's
// target role (case-insensitive substring). Skipped when either is empty.
func TitleMatchRule[D any](weight float64, title func(D) string) Rule[D] {
	return Rule[D]{
		Name: "title_match",
		Score: func(profile *types.Profile, doc D) float64 {
			target := strings.ToLower(strings.TrimSpace(profile.TargetRole))
			if target == "" {
				return 0
			}
			if strings.Contains(strings.ToLower(title(doc)), target) {
				return weight
			}
			return 0
		},
	}
}

// lowerSet folds a skill list into a lowercase membership set.
func lowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}
