package textindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit_BuildsVocabulary(t *testing.T) {
	space := Fit([]string{"python react", "python sql"}, Options{})

	assert.Equal(t, 3, space.Size())
}

func TestFit_SingleDocumentTermsRetained(t *testing.T) {
	// No minimum-document-frequency pruning: a term seen in only one
	// document still enters the vocabulary.
	space := Fit([]string{"python", "solidity"}, Options{})

	vec := space.Transform("solidity")
	assert.NotEmpty(t, vec)
}

func TestFit_MaxFeaturesCapsVocabulary(t *testing.T) {
	docs := []string{
		"python python python react react sql",
		"python react kubernetes",
	}
	space := Fit(docs, Options{MaxFeatures: 2})

	assert.Equal(t, 2, space.Size())
	// The two most frequent corpus terms survive the cap.
	assert.NotEmpty(t, space.Transform("python"))
	assert.NotEmpty(t, space.Transform("react"))
	assert.Empty(t, space.Transform("kubernetes"))
}

func TestFit_EmptyCorpus(t *testing.T) {
	space := Fit(nil, Options{})

	assert.Equal(t, 0, space.Size())
	assert.Empty(t, space.Transform("anything at all"))
}

func TestTransform_OutOfVocabularyDropped(t *testing.T) {
	space := Fit([]string{"python react"}, Options{})

	vec := space.Transform("python haskell")

	// haskell is silently dropped; python still contributes weight.
	assert.Len(t, vec, 1)
}

func TestTransform_EmptyTextYieldsZeroVector(t *testing.T) {
	space := Fit([]string{"python react"}, Options{})

	assert.Empty(t, space.Transform(""))
}

func TestTransform_VectorIsL2Normalized(t *testing.T) {
	space := Fit([]string{"python react sql", "python go"}, Options{})

	vec := space.Transform("python react react sql")

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestTransform_StopWordsExcluded(t *testing.T) {
	space := Fit([]string{"the python developer"}, Options{StopWords: EnglishStopWords()})

	vec := space.Transform("the the the")
	assert.Empty(t, vec)
}
