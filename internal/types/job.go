// Package types provides type definitions for structured data used throughout the Hire-Skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job represents a job posting in a matching corpus. Documents are treated
// as immutable once fetched for a matching pass.
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	WorkType         string   `json:"work_type,omitempty"`         // Remote, Hybrid, On-site
	JobType          string   `json:"job_type,omitempty"`          // Full-time, Part-time, Contract
	ExperienceLevel  string   `json:"experience_level,omitempty"`  // Entry, Mid, Senior
	SkillsRequired   []string `json:"skills_required"`
	Description      string   `json:"description,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	SalaryMin        int      `json:"salary_min,omitempty"`
	SalaryMax        int      `json:"salary_max,omitempty"`
	PostedDate       string   `json:"posted_date,omitempty"`
	URL              string   `json:"url,omitempty"`
}

// Normalize fills nil list fields with empty slices. Documents missing
// expected fields are treated permissively rather than rejected.
func (j *Job) Normalize() {
	if j.SkillsRequired == nil {
		j.SkillsRequired = []string{}
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
}
