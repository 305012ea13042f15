// Package types provides type definitions for structured data used throughout the Hire-Skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillGap is a read-only view of the set difference between a profile's
// skills and a target's required/optional skills. Output lists preserve the
// catalog's original casing; percentages are 0 when the denominator is empty.
type SkillGap struct {
	MatchedRequired         []string `json:"matched_required"`
	MatchedOptional         []string `json:"matched_optional"`
	MissingRequired         []string `json:"missing_required"`
	MissingOptional         []string `json:"missing_optional"`
	RequiredMatchPercentage float64  `json:"required_match_percentage"`
	TotalMatchPercentage    float64  `json:"total_match_percentage"`
}

// LearningPhase is one phase of a prioritized learning path
type LearningPhase struct {
	Phase    string   `json:"phase"`
	Priority string   `json:"priority"`
	Skills   []string `json:"skills"`
	Timeline string   `json:"timeline"`
}

// SkillPlan is the detailed skill-gap analysis for a specific target career
type SkillPlan struct {
	Career               string          `json:"career"`
	Category             string          `json:"category"`
	CurrentMatch         string          `json:"current_match"`
	SkillsYouHave        []string        `json:"skills_you_have"`
	SkillsNeeded         []string        `json:"skills_needed"`
	BonusSkills          []string        `json:"bonus_skills"`
	LearningPath         []LearningPhase `json:"learning_path"`
	EstimatedTimeToReady string          `json:"estimated_time_to_ready"`
}

// CareerRecommendation is a scored career catalog entry with rationale.
// Scores are on the 0-100 display scale; the engine computes 0-1 internally
// and converts exactly once at the boundary.
type CareerRecommendation struct {
	Career
	SimilarityScore      float64  `json:"similarity_score"`
	MatchScore           float64  `json:"match_score"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	SkillGaps            SkillGap `json:"skill_gaps"`
	Reasoning            string   `json:"reasoning"`
}

// JobMatch is a scored job posting. MatchScore is on the 0-100 display scale.
type JobMatch struct {
	Job
	MatchScore float64 `json:"match_score"`
}

// MatchExplanation is the coarse rationale for a single profile/job pair,
// produced on demand rather than bundled with ranked results.
type MatchExplanation struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceMatch bool     `json:"experience_match"`
	TitleMatch      bool     `json:"title_match"`
}
