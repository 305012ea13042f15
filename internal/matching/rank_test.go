package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredFixture() []Scored[testDoc] {
	return []Scored[testDoc]{
		{Doc: testDoc{Title: "low"}, Score: 0.2},
		{Doc: testDoc{Title: "high"}, Score: 0.9},
		{Doc: testDoc{Title: "mid-a"}, Score: 0.5},
		{Doc: testDoc{Title: "mid-b"}, Score: 0.5},
	}
}

func TestRank_DescendingByScore(t *testing.T) {
	ranked := Rank(scoredFixture(), nil, 0)

	require.Len(t, ranked, 4)
	assert.Equal(t, "high", ranked[0].Doc.Title)
	assert.Equal(t, "low", ranked[3].Doc.Title)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_TiesKeepCorpusOrderWithoutSecondary(t *testing.T) {
	ranked := Rank(scoredFixture(), nil, 0)

	assert.Equal(t, "mid-a", ranked[1].Doc.Title)
	assert.Equal(t, "mid-b", ranked[2].Doc.Title)
}

func TestRank_SecondaryBreaksTies(t *testing.T) {
	secondary := func(s Scored[testDoc]) float64 {
		if s.Doc.Title == "mid-b" {
			return 80.0
		}
		return 10.0
	}

	ranked := Rank(scoredFixture(), secondary, 0)

	assert.Equal(t, "mid-b", ranked[1].Doc.Title)
	assert.Equal(t, "mid-a", ranked[2].Doc.Title)
}

func TestRank_Truncates(t *testing.T) {
	ranked := Rank(scoredFixture(), nil, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Doc.Title)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	input := scoredFixture()
	_ = Rank(input, nil, 0)

	assert.Equal(t, "low", input[0].Doc.Title)
}

func TestClampTopK(t *testing.T) {
	assert.Equal(t, 1, ClampTopK(0, 1, 15))
	assert.Equal(t, 1, ClampTopK(-3, 1, 15))
	assert.Equal(t, 5, ClampTopK(5, 1, 15))
	assert.Equal(t, 15, ClampTopK(40, 1, 15))
}
