package jobs

import (
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// ApplyFilters returns the postings that satisfy every set constraint.
// Location matches by case-insensitive substring; experience level, work
// type, and job type match by case-insensitive equality; MinSalary requires
// the posting's salary floor to meet it. A nil or zero filter passes
// everything through.
func ApplyFilters(corpus []types.Job, filters *types.JobFilters) []types.Job {
	if filters.IsZero() {
		return corpus
	}

	location := strings.ToLower(filters.LocationConstraint())

	eligible := make([]types.Job, 0, len(corpus))
	for _, job := range corpus {
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if filters.ExperienceLevel != "" && !strings.EqualFold(job.ExperienceLevel, filters.ExperienceLevel) {
			continue
		}
		if filters.WorkType != "" && !strings.EqualFold(job.WorkType, filters.WorkType) {
			continue
		}
		if filters.JobType != "" && !strings.EqualFold(job.JobType, filters.JobType) {
			continue
		}
		if filters.MinSalary > 0 && job.SalaryMin < filters.MinSalary {
			continue
		}
		eligible = append(eligible, job)
	}
	return eligible
}
