package matching

import "sort"

// Rank sorts scored results descending by adjusted score, breaking ties by
// the secondary metric (descending) when one is supplied. Remaining ties
// keep corpus iteration order (stable sort). A positive topK truncates the
// result; topK <= 0 returns everything.
func Rank[D any](results []Scored[D], secondary func(Scored[D]) float64, topK int) []Scored[D] {
	ranked := make([]Scored[D], len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if secondary != nil {
			return secondary(ranked[i]) > secondary(ranked[j])
		}
		return false
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// ClampTopK clips a caller-requested result count into [min, max].
func ClampTopK(k, min, max int) int {
	if k < min {
		return min
	}
	if k > max {
		return max
	}
	return k
}
