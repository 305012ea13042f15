package careers

import (
	"strings"
	"sync"

	"github.com/Sakib9797/Hire-Skill/internal/matching"
	"github.com/Sakib9797/Hire-Skill/internal/skillgap"
	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Top-N bounds for career recommendations.
const (
	MinRecommendations     = 1
	MaxRecommendations     = 15
	DefaultRecommendations = 5
)

// Recommender scores user profiles against the career catalog. The catalog
// feature space is fitted lazily exactly once and reused for the life of
// the Recommender; construction is cheap and Recommend is safe for
// concurrent callers.
type Recommender struct {
	catalog []types.Career
	engine  *matching.Engine[types.Career]

	once  sync.Once
	index *matching.Index[types.Career]
}

// NewRecommender builds a Recommender over the given catalog. A nil catalog
// uses the built-in one.
func NewRecommender(catalog []types.Career) *Recommender {
	if catalog == nil {
		catalog = Catalog()
	}
	weights := matching.DefaultWeights()
	return &Recommender{
		catalog: catalog,
		engine: &matching.Engine[types.Career]{
			QueryText: profileText,
			DocText:   careerText,
			// Careers carry only skill and experience heuristics; the
			// title and work-type bonuses are job-specific. Careers
			// state no experience level, so that rule never fires here,
			// but keeping it wired keeps the two instantiations aligned.
			Rules: []matching.Rule[types.Career]{
				matching.SkillOverlapRule(weights.SkillOverlap, func(c types.Career) []string {
					return c.RequiredSkills
				}),
				matching.ExperienceLevelRule(weights.ExperienceLevel, func(types.Career) string {
					return ""
				}),
			},
			// Small, curated corpus: keep single-document terms, no
			// vocabulary cap, no stop words.
		},
	}
}

// fitted returns the lazily initialized catalog index.
func (r *Recommender) fitted() *matching.Index[types.Career] {
	r.once.Do(func() {
		r.index = r.engine.Fit(r.catalog)
	})
	return r.index
}

// Recommend returns the top-N career paths for a profile, each with skill
// gap analysis and a human-readable rationale. The profile must carry at
// least one skill or interest; otherwise ErrEmptyProfile is returned.
func (r *Recommender) Recommend(profile *types.Profile, topN int) ([]types.CareerRecommendation, error) {
	if profile == nil || !profile.HasSignal() {
		return nil, ErrEmptyProfile
	}
	topN = matching.ClampTopK(topN, MinRecommendations, MaxRecommendations)

	scored := r.fitted().Match(profile)

	recommendations := make([]scoredRecommendation, len(scored))
	for i, s := range scored {
		gap := skillgap.Analyze(profile.Skills, s.Doc.RequiredSkills, s.Doc.OptionalSkills)
		recommendations[i] = scoredRecommendation{
			scored: s,
			rec: types.CareerRecommendation{
				Career:               s.Doc,
				SimilarityScore:      matching.DisplayScore(s.Similarity),
				MatchScore:           matching.DisplayScore(s.Score),
				SkillMatchPercentage: gap.RequiredMatchPercentage,
				SkillGaps:            gap,
				Reasoning:            buildReasoning(s.Doc, gap, s.Similarity),
			},
		}
	}

	ranked := matching.Rank(toScored(recommendations), func(s matching.Scored[scoredRecommendation]) float64 {
		return s.Doc.rec.SkillMatchPercentage
	}, topN)

	out := make([]types.CareerRecommendation, len(ranked))
	for i, s := range ranked {
		out[i] = s.Doc.rec
	}
	return out, nil
}

// scoredRecommendation keeps the engine score next to the assembled
// recommendation so ranking can use skill coverage as its tiebreak.
type scoredRecommendation struct {
	scored matching.Scored[types.Career]
	rec    types.CareerRecommendation
}

func toScored(recs []scoredRecommendation) []matching.Scored[scoredRecommendation] {
	out := make([]matching.Scored[scoredRecommendation], len(recs))
	for i, r := range recs {
		out[i] = matching.Scored[scoredRecommendation]{
			Doc:        r,
			Similarity: r.scored.Similarity,
			Score:      r.scored.Score,
		}
	}
	return out
}

// SkillPlan builds the detailed gap analysis and learning path for a
// specific target career. Unknown targets return UnknownTargetError with
// the list of valid role names.
func (r *Recommender) SkillPlan(profileSkills []string, targetCareer string) (*types.SkillPlan, error) {
	var career *types.Career
	for i := range r.catalog {
		if strings.EqualFold(r.catalog[i].Role, targetCareer) {
			career = &r.catalog[i]
			break
		}
	}
	if career == nil {
		roles := make([]string, len(r.catalog))
		for i, c := range r.catalog {
			roles[i] = c.Role
		}
		return nil, &UnknownTargetError{Target: targetCareer, ValidRoles: roles}
	}

	gap := skillgap.Analyze(profileSkills, career.RequiredSkills, career.OptionalSkills)

	have := append(append([]string{}, gap.MatchedRequired...), gap.MatchedOptional...)
	return &types.SkillPlan{
		Career:               career.Role,
		Category:             career.Category,
		CurrentMatch:         formatPercent(gap.RequiredMatchPercentage),
		SkillsYouHave:        have,
		SkillsNeeded:         gap.MissingRequired,
		BonusSkills:          gap.MissingOptional,
		LearningPath:         skillgap.LearningPath(gap),
		EstimatedTimeToReady: skillgap.Readiness(gap),
	}, nil
}

// profileText is the career-matching query text: skills plus interests.
func profileText(p *types.Profile) string {
	parts := make([]string, 0, len(p.Skills)+len(p.Interests))
	parts = append(parts, p.Skills...)
	parts = append(parts, p.Interests...)
	return strings.Join(parts, " ")
}

// careerText is a career's matchable text: its combined skill lists.
func careerText(c types.Career) string {
	return strings.Join(append(append([]string{}, c.RequiredSkills...), c.OptionalSkills...), " ")
}
