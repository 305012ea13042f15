package careers

import (
	"fmt"
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// buildReasoning creates the human-readable rationale for a recommendation.
// similarity is on the internal 0-1 scale.
func buildReasoning(career types.Career, gap types.SkillGap, similarity float64) string {
	var reasons []string

	switch {
	case similarity > 0.7:
		reasons = append(reasons, "Excellent fit based on your skills and interests")
	case similarity > 0.5:
		reasons = append(reasons, "Good match for your profile")
	case similarity > 0.3:
		reasons = append(reasons, "Potential career path with some skill development")
	default:
		reasons = append(reasons, "Emerging opportunity requiring skill building")
	}

	if matched := len(gap.MatchedRequired); matched > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"You already have %d out of %d required skills (%.0f%%)",
			matched, len(career.RequiredSkills), gap.RequiredMatchPercentage))
	}

	if missing := len(gap.MissingRequired); missing > 0 {
		focus := gap.MissingRequired
		if len(focus) > 3 {
			focus = focus[:3]
		}
		if missing <= 3 {
			reasons = append(reasons, "Focus on learning: "+strings.Join(focus, ", "))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"Need to develop %d key skills including: %s",
				missing, strings.Join(focus, ", ")))
		}
	} else {
		reasons = append(reasons, "You meet all required skill criteria!")
	}

	switch career.GrowthRate {
	case "Very High":
		reasons = append(reasons, "High demand career with excellent growth prospects")
	case "High":
		reasons = append(reasons, "Strong job market demand")
	}

	return strings.Join(reasons, ". ") + "."
}

// formatPercent renders a percentage for display, one decimal place.
func formatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
