package vectorstore

import "math"

// CosineDistance computes 1 - cosine similarity between two vectors.
// A zero-magnitude vector or mismatched dimensions yield the maximum
// distance of 1 rather than an error; such records simply rank last.
func CosineDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		return 1
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}
