// Package types provides type definitions for structured data used throughout the Hire-Skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Career represents one entry in the curated career catalog
type Career struct {
	Role           string   `json:"role"`
	Category       string   `json:"category"`
	RequiredSkills []string `json:"required_skills"`
	OptionalSkills []string `json:"optional_skills"`
	Description    string   `json:"description"`
	AverageSalary  string   `json:"average_salary"`
	GrowthRate     string   `json:"growth_rate"`
}
