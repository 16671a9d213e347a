package similarity

import "math"

// CosineSimilarity computes the cosine of the angle between two vectors.
// For non-negative weighted vectors the result is in [0, 1], where 1 means
// identical direction. Zero vectors and mismatched lengths yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
