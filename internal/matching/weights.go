package matching

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default bonus weights. These are domain heuristics the vector space
// cannot express directly.
const (
	defaultSkillOverlapWeight    = 0.3
	defaultExperienceLevelWeight = 0.1
	defaultWorkTypeWeight        = 0.05
	defaultTitleMatchWeight      = 0.15
)

// Weights holds the bonus-rule weights for one matcher instantiation.
// Each weight must stay in [0, 1]; the post-sum clamp applies regardless.
type Weights struct {
	SkillOverlap    float64 `yaml:"skill_overlap" validate:"gte=0,lte=1"`
	ExperienceLevel float64 `yaml:"experience_level" validate:"gte=0,lte=1"`
	WorkType        float64 `yaml:"work_type" validate:"gte=0,lte=1"`
	TitleMatch      float64 `yaml:"title_match" validate:"gte=0,lte=1"`
}

var weightsValidator = validator.New()

// DefaultWeights returns the standard bonus weights.
func DefaultWeights() Weights {
	return Weights{
		SkillOverlap:    defaultSkillOverlapWeight,
		ExperienceLevel: defaultExperienceLevelWeight,
		WorkType:        defaultWorkTypeWeight,
		TitleMatch:      defaultTitleMatchWeight,
	}
}

// weightsFile mirrors Weights with optional fields so a YAML override file
// may set only some weights and inherit defaults for the rest.
type weightsFile struct {
	SkillOverlap    *float64 `yaml:"skill_overlap"`
	ExperienceLevel *float64 `yaml:"experience_level"`
	WorkType        *float64 `yaml:"work_type"`
	TitleMatch      *float64 `yaml:"title_match"`
}

// LoadWeights reads a YAML weight-override file on top of the defaults.
func LoadWeights(path string) (Weights, error) {
	weights := DefaultWeights()

	data, err := os.ReadFile(path)
	if err != nil {
		return weights, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var overrides weightsFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return weights, fmt.Errorf("failed to parse rules YAML %s: %w", path, err)
	}

	if overrides.SkillOverlap != nil {
		weights.SkillOverlap = *overrides.SkillOverlap
	}
	if overrides.ExperienceLevel != nil {
		weights.ExperienceLevel = *overrides.ExperienceLevel
	}
	if overrides.WorkType != nil {
		weights.WorkType = *overrides.WorkType
	}
	if overrides.TitleMatch != nil {
		weights.TitleMatch = *overrides.TitleMatch
	}

	if err := weights.Validate(); err != nil {
		return DefaultWeights(), fmt.Errorf("invalid rule weights in %s: %w", path, err)
	}
	return weights, nil
}

// Validate checks every weight is in [0, 1].
func (w Weights) Validate() error {
	return weightsValidator.Struct(w)
}
