package skillgap

import (
	"testing"

	"github.com/Sakib9797/Hire-Skill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningPath_AllThreePhases(t *testing.T) {
	gap := types.SkillGap{
		MissingRequired: []string{"a", "b", "c", "d", "e", "f", "g"},
		MissingOptional: []string{"x", "y"},
	}

	phases := LearningPath(gap)

	require.Len(t, phases, 3)
	assert.Equal(t, "Phase 1: Essential Skills", phases[0].Phase)
	assert.Equal(t, "High", phases[0].Priority)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, phases[0].Skills)
	assert.Equal(t, "3-6 months", phases[0].Timeline)

	assert.Equal(t, "Medium", phases[1].Priority)
	assert.Equal(t, []string{"f", "g"}, phases[1].Skills)
	assert.Equal(t, "6-12 months", phases[1].Timeline)

	assert.Equal(t, "Low", phases[2].Priority)
	assert.Equal(t, []string{"x", "y"}, phases[2].Skills)
	assert.Equal(t, "12+ months", phases[2].Timeline)
}

func TestLearningPath_NoOverflowSkipsPhaseTwo(t *testing.T) {
	gap := types.SkillGap{MissingRequired: []string{"a", "b"}}

	phases := LearningPath(gap)

	require.Len(t, phases, 1)
	assert.Equal(t, "High", phases[0].Priority)
}

func TestLearningPath_OnlyOptionalMissing(t *testing.T) {
	gap := types.SkillGap{MissingOptional: []string{"x"}}

	phases := LearningPath(gap)

	require.Len(t, phases, 1)
	assert.Equal(t, "Phase 3: Advanced Skills", phases[0].Phase)
}

func TestLearningPath_NothingMissing(t *testing.T) {
	assert.Empty(t, LearningPath(types.SkillGap{}))
}

func TestReadiness_Thresholds(t *testing.T) {
	missing := func(n int) types.SkillGap {
		skills := make([]string, n)
		return types.SkillGap{MissingRequired: skills}
	}

	assert.Equal(t, "You're ready now!", Readiness(missing(0)))
	assert.Equal(t, "3-6 months with focused learning", Readiness(missing(3)))
	assert.Equal(t, "6-12 months of dedicated study", Readiness(missing(4)))
	assert.Equal(t, "6-12 months of dedicated study", Readiness(missing(7)))
	assert.Equal(t, "12-18 months to build strong foundation", Readiness(missing(8)))
}
