// Package matching provides the generic profile/document matching engine:
// TF-IDF projection, cosine scoring, rule-based score adjustment, and
// ranking. It is instantiated once for the career catalog and once for
// dynamic job corpora.
package matching

import (
	"math"

	"github.com/Sakib9797/Hire-Skill/internal/textindex"
	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Engine describes how to match one document type against a profile.
// It is parameterized by text-extraction functions and a bonus-rule set so
// the career and job instantiations share a single scoring path.
type Engine[D any] struct {
	// QueryText extracts the profile's matchable text.
	QueryText func(*types.Profile) string
	// DocText extracts a document's matchable text.
	DocText func(D) string
	// Rules are the additive score adjustments applied after similarity.
	Rules []Rule[D]
	// IndexOptions configure vocabulary fitting for this corpus kind.
	IndexOptions textindex.Options
}

// Index is a corpus vectorized into a fitted feature space. It is immutable
// after Fit and safe for concurrent Match calls.
type Index[D any] struct {
	engine  *Engine[D]
	docs    []D
	space   *textindex.FeatureSpace
	vectors []textindex.Vector
}

// Scored pairs a document with its raw similarity and adjusted score, both
// on the internal 0-1 scale.
type Scored[D any] struct {
	Doc        D
	Similarity float64
	Score      float64
}

// Fit vectorizes a corpus into a new Index. Each matching pass over a
// dynamic corpus fits fresh; static corpora may cache the returned Index.
func (e *Engine[D]) Fit(docs []D) *Index[D] {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = e.DocText(doc)
	}
	space := textindex.Fit(texts, e.IndexOptions)

	vectors := make([]textindex.Vector, len(docs))
	for i, text := range texts {
		vectors[i] = space.Transform(text)
	}
	return &Index[D]{engine: e, docs: docs, space: space, vectors: vectors}
}

// Len returns the number of documents in the index.
func (ix *Index[D]) Len() int {
	return len(ix.docs)
}

// Match scores every document against the profile, in corpus order.
// A profile with no usable text yields similarity 0 everywhere; bonuses
// (if any apply) still contribute, so this is not an error.
func (ix *Index[D]) Match(profile *types.Profile) []Scored[D] {
	query := ix.space.Transform(ix.engine.QueryText(profile))

	results := make([]Scored[D], len(ix.docs))
	for i, doc := range ix.docs {
		sim := textindex.Cosine(query, ix.vectors[i])
		score := sim
		for _, rule := range ix.engine.Rules {
			score += rule.Score(profile, doc)
		}
		// Bonuses are unbounded in principle; the final score is clamped
		// to [0, 1] exactly once, after all of them are summed.
		results[i] = Scored[D]{Doc: doc, Similarity: sim, Score: clamp01(score)}
	}
	return results
}

func clamp01(s float64) float64 {
	return math.Min(math.Max(s, 0), 1)
}

// DisplayScore converts an internal 0-1 score to the 0-100 display scale,
// rounded to two decimals. This is the single boundary conversion; nothing
// inside the engine works on the display scale.
func DisplayScore(s float64) float64 {
	return math.Round(s*10000) / 100
}
