package textindex

// Cosine returns the cosine similarity of two vectors produced by the same
// FeatureSpace. Vectors are L2-normalized at transform time, so the dot
// product is the cosine. Non-negative term weights keep the result in
// [0, 1]; a zero-magnitude vector yields 0, never NaN.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		if other, ok := b[idx]; ok {
			dot += w * other
		}
	}
	if dot > 1 {
		// Guard against float drift past the clamp boundary.
		dot = 1
	}
	return dot
}
