// Package jobs matches user profiles against dynamic job-posting corpora.
// Unlike the career recommender, job corpora change between calls, so each
// matching pass fits a fresh feature space over the filtered postings.
package jobs

import (
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/matching"
	"github.com/Sakib9797/Hire-Skill/internal/textindex"
	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Top-K bounds for job matching.
const (
	MinMatches     = 1
	MaxMatches     = 100
	DefaultMatches = 20
)

// jobVocabularyCap bounds the fitted vocabulary for job corpora, which are
// far noisier than the curated career catalog.
const jobVocabularyCap = 500

// Matcher scores profiles against job postings. It is stateless across
// calls and safe for concurrent use.
type Matcher struct {
	engine *matching.Engine[types.Job]
}

// NewMatcher builds a Matcher with the given rule weights. Nil weights use
// the defaults.
func NewMatcher(weights *matching.Weights) *Matcher {
	if weights == nil {
		w := matching.DefaultWeights()
		weights = &w
	}
	return &Matcher{
		engine: &matching.Engine[types.Job]{
			QueryText: profileText,
			DocText:   jobText,
			Rules: []matching.Rule[types.Job]{
				matching.SkillOverlapRule(weights.SkillOverlap, func(j types.Job) []string {
					return j.SkillsRequired
				}),
				matching.ExperienceLevelRule(weights.ExperienceLevel, func(j types.Job) string {
					return j.ExperienceLevel
				}),
				matching.WorkTypeRule(weights.WorkType, func(j types.Job) string {
					return j.WorkType
				}),
				matching.TitleMatchRule(weights.TitleMatch, func(j types.Job) string {
					return j.Title
				}),
			},
			IndexOptions: textindex.Options{
				MaxFeatures: jobVocabularyCap,
				StopWords:   textindex.EnglishStopWords(),
			},
		},
	}
}

// Match filters the corpus, scores what survives against the profile, and
// returns the top-K postings by adjusted score. Filters apply before any
// vectorization so excluded postings never influence the feature space.
// An empty post-filter corpus returns an empty, non-nil slice.
func (m *Matcher) Match(profile *types.Profile, corpus []types.Job, filters *types.JobFilters, topK int) []types.JobMatch {
	topK = matching.ClampTopK(topK, MinMatches, MaxMatches)

	eligible := ApplyFilters(corpus, filters)
	if len(eligible) == 0 {
		return []types.JobMatch{}
	}

	scored := m.engine.Fit(eligible).Match(profile)
	ranked := matching.Rank(scored, nil, topK)

	out := make([]types.JobMatch, len(ranked))
	for i, s := range ranked {
		out[i] = types.JobMatch{
			Job:        s.Doc,
			MatchScore: matching.DisplayScore(s.Score),
		}
	}
	return out
}

// profileText is the job-matching query text: target role, skills
// (double-weighted), bio, and the text of experience and education entries.
func profileText(p *types.Profile) string {
	var parts []string
	if p.TargetRole != "" {
		parts = append(parts, p.TargetRole)
	}
	parts = append(parts, p.Skills...)
	parts = append(parts, p.Skills...)
	if p.Bio != "" {
		parts = append(parts, p.Bio)
	}
	for _, exp := range p.Experience {
		if exp.Title != "" {
			parts = append(parts, exp.Title)
		}
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
	}
	for _, edu := range p.Education {
		if edu.Degree != "" {
			parts = append(parts, edu.Degree)
		}
		if edu.Field != "" {
			parts = append(parts, edu.Field)
		}
	}
	return strings.Join(parts, " ")
}

// jobText is a posting's matchable text. Title and required skills are
// double-weighted relative to the free-form fields.
func jobText(j types.Job) string {
	var parts []string
	parts = append(parts, j.Title, j.Title)
	parts = append(parts, j.SkillsRequired...)
	parts = append(parts, j.SkillsRequired...)
	if j.Description != "" {
		parts = append(parts, j.Description)
	}
	parts = append(parts, j.Requirements...)
	parts = append(parts, j.Responsibilities...)
	return strings.Join(parts, " ")
}
