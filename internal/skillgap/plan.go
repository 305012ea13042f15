package skillgap

import "github.com/Sakib9797/Hire-Skill/internal/types"

// phaseSkillLimit is how many skills each learning phase holds before
// overflow spills into the next phase.
const phaseSkillLimit = 5

// LearningPath builds the phased learning plan for a skill gap. Phases with
// no applicable skills are omitted entirely, never emitted empty.
func LearningPath(gap types.SkillGap) []types.LearningPhase {
	var phases []types.LearningPhase

	if len(gap.MissingRequired) > 0 {
		phases = append(phases, types.LearningPhase{
			Phase:    "Phase 1: Essential Skills",
			Priority: "High",
			Skills:   head(gap.MissingRequired, phaseSkillLimit),
			Timeline: "3-6 months",
		})
	}
	if len(gap.MissingRequired) > phaseSkillLimit {
		phases = append(phases, types.LearningPhase{
			Phase:    "Phase 2: Core Competencies",
			Priority: "Medium",
			Skills:   gap.MissingRequired[phaseSkillLimit:],
			Timeline: "6-12 months",
		})
	}
	if len(gap.MissingOptional) > 0 {
		phases = append(phases, types.LearningPhase{
			Phase:    "Phase 3: Advanced Skills",
			Priority: "Low",
			Skills:   head(gap.MissingOptional, phaseSkillLimit),
			Timeline: "12+ months",
		})
	}
	return phases
}

// Readiness estimates the time to become job-ready from the number of
// missing required skills. Fixed thresholds, not derived.
func Readiness(gap types.SkillGap) string {
	switch missing := len(gap.MissingRequired); {
	case missing == 0:
		return "You're ready now!"
	case missing <= 3:
		return "3-6 months with focused learning"
	case missing <= 7:
		return "6-12 months of dedicated study"
	default:
		return "12-18 months to build strong foundation"
	}
}

func head(skills []string, n int) []string {
	if len(skills) > n {
		return skills[:n]
	}
	return skills
}
