// Package types provides type definitions for structured data used throughout the Hire-Skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobFilters narrows a job corpus by hard constraints before any scoring
// happens. All fields are optional; a zero value means "no constraint".
type JobFilters struct {
	Location        string `json:"location,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	WorkType        string `json:"work_type,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	MinSalary       int    `json:"min_salary,omitempty" validate:"gte=0"`
}

// LocationConstraint returns the effective location filter value.
// "any" (case-insensitive) is treated identically to absence.
func (f *JobFilters) LocationConstraint() string {
	loc := strings.TrimSpace(f.Location)
	if strings.EqualFold(loc, "any") {
		return ""
	}
	return loc
}

// IsZero reports whether no constraint is set at all.
func (f *JobFilters) IsZero() bool {
	return f == nil || (f.LocationConstraint() == "" && f.ExperienceLevel == "" &&
		f.WorkType == "" && f.JobType == "" && f.MinSalary == 0)
}
