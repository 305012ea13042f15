// Package types provides type definitions for structured data used throughout the Hire-Skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents the query entity for matching: a job seeker's skills,
// interests, background, and optional target role.
type Profile struct {
	Skills     []string          `json:"skills"`
	Interests  []string          `json:"interests,omitempty"` // career matching only
	Bio        string            `json:"bio,omitempty"`
	TargetRole string            `json:"target_role,omitempty"` // job matching only
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// ExperienceEntry represents a single work experience item on a profile
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// EducationEntry represents a single education item on a profile
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
}

// HasSignal reports whether the profile carries any matchable signal for
// career recommendation (at least one skill or interest).
func (p *Profile) HasSignal() bool {
	return len(p.Skills) > 0 || len(p.Interests) > 0
}

// ExperienceCount returns the number of experience entries, used as the
// proxy for seniority when matching experience-level brackets.
func (p *Profile) ExperienceCount() int {
	return len(p.Experience)
}
