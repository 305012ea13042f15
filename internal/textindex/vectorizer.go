package textindex

import (
	"math"
	"sort"
)

// Options configures how a FeatureSpace is fitted.
type Options struct {
	// MaxFeatures caps the vocabulary to the top N terms by corpus
	// frequency. Zero means unlimited (appropriate for small, curated
	// corpora such as the career catalog).
	MaxFeatures int
	// StopWords are removed before counting. Nil keeps every term.
	StopWords map[string]struct{}
}

// FeatureSpace is the fitted vocabulary and inverse-document-frequency
// table derived from a corpus at a point in time. It is never mutated
// after Fit and is safe for unlimited concurrent readers.
type FeatureSpace struct {
	vocab map[string]int
	idf   []float64
	opts  Options
}

// Vector is a sparse, L2-normalized TF-IDF vector keyed by term index.
type Vector map[int]float64

// Fit builds a FeatureSpace from a corpus of document texts. A corpus of
// zero documents yields an empty space whose transforms are zero vectors.
func Fit(docs []string, opts Options) *FeatureSpace {
	df := make(map[string]int)
	corpusFreq := make(map[string]int)

	for _, doc := range docs {
		terms := Tokenize(doc, opts.StopWords)
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			corpusFreq[t]++
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	terms := make([]string, 0, len(corpusFreq))
	for t := range corpusFreq {
		terms = append(terms, t)
	}
	// Deterministic vocabulary order: corpus frequency descending, then
	// lexicographic so equal-frequency terms never reorder between fits.
	sort.Slice(terms, func(i, j int) bool {
		if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		terms = terms[:opts.MaxFeatures]
	}

	space := &FeatureSpace{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		opts:  opts,
	}
	n := float64(len(docs))
	for i, t := range terms {
		space.vocab[t] = i
		// Smoothed IDF: behaves as if one extra document contained
		// every term, so no weight is ever zero or negative.
		space.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return space
}

// Size returns the number of terms in the fitted vocabulary.
func (s *FeatureSpace) Size() int {
	return len(s.vocab)
}

// Transform projects arbitrary text into the fitted space. Terms absent
// from the vocabulary are silently dropped; an out-of-vocabulary query never
// errors, it just scores lower. Empty text yields the zero vector.
func (s *FeatureSpace) Transform(text string) Vector {
	counts := make(map[int]int)
	for _, t := range Tokenize(text, s.opts.StopWords) {
		if idx, ok := s.vocab[t]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	vec := make(Vector, len(counts))
	var norm float64
	for idx, tf := range counts {
		w := float64(tf) * s.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return Vector{}
	}
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}
