package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// SaveJobs upserts postings by ID.
func (s *Store) SaveJobs(ctx context.Context, jobs []types.Job) error {
	for i := range jobs {
		job := jobs[i]
		job.Normalize()

		skills, err := json.Marshal(job.SkillsRequired)
		if err != nil {
			return fmt.Errorf("failed to marshal skills for job %s: %w", job.ID, err)
		}
		requirements, err := json.Marshal(job.Requirements)
		if err != nil {
			return fmt.Errorf("failed to marshal requirements for job %s: %w", job.ID, err)
		}
		responsibilities, err := json.Marshal(job.Responsibilities)
		if err != nil {
			return fmt.Errorf("failed to marshal responsibilities for job %s: %w", job.ID, err)
		}

		_, err = s.pool.Exec(ctx,
			`INSERT INTO jobs (id, title, company, location, work_type, job_type,
			                   experience_level, skills_required, description,
			                   requirements, responsibilities, salary_min, salary_max,
			                   posted_date, url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			 ON CONFLICT (id) DO UPDATE SET
			     title = $2, company = $3, location = $4, work_type = $5,
			     job_type = $6, experience_level = $7, skills_required = $8,
			     description = $9, requirements = $10, responsibilities = $11,
			     salary_min = $12, salary_max = $13, posted_date = $14, url = $15,
			     updated_at = NOW()`,
			job.ID, job.Title, job.Company, job.Location, job.WorkType, job.JobType,
			job.ExperienceLevel, skills, job.Description,
			requirements, responsibilities, job.SalaryMin, job.SalaryMax,
			job.PostedDate, job.URL,
		)
		if err != nil {
			return fmt.Errorf("failed to save job %s: %w", job.ID, err)
		}
	}
	return nil
}

// ListJobs returns every stored posting, newest first.
func (s *Store) ListJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, location, work_type, job_type, experience_level,
		        skills_required, description, requirements, responsibilities,
		        salary_min, salary_max, posted_date, url
		 FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var job types.Job
		var skills, requirements, responsibilities []byte
		err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location,
			&job.WorkType, &job.JobType, &job.ExperienceLevel,
			&skills, &job.Description, &requirements, &responsibilities,
			&job.SalaryMin, &job.SalaryMax, &job.PostedDate, &job.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(skills, &job.SkillsRequired); err != nil {
			return nil, fmt.Errorf("failed to decode skills for job %s: %w", job.ID, err)
		}
		if err := json.Unmarshal(requirements, &job.Requirements); err != nil {
			return nil, fmt.Errorf("failed to decode requirements for job %s: %w", job.ID, err)
		}
		if err := json.Unmarshal(responsibilities, &job.Responsibilities); err != nil {
			return nil, fmt.Errorf("failed to decode responsibilities for job %s: %w", job.ID, err)
		}
		job.Normalize()
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// DeleteAllJobs clears the posting corpus.
func (s *Store) DeleteAllJobs(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("failed to delete jobs: %w", err)
	}
	return nil
}
