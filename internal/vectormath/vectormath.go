// Package vectormath holds the batched similarity primitives for the
// semantic matcher. All functions are pure and allocation-conscious:
// the cosine scan is the dominant cost center at catalog scale.
package vectormath

import "math"

// Normalize returns v scaled to unit length as a new vector.
// A zero vector normalizes to nil, which callers treat as "no signal".
func Normalize(v []float32) []float32 {
	n := Norm(v)
	if n == 0 {
		return nil
	}
	out := make([]float32, len(v))
	inv := float32(1 / n)
	for i, val := range v {
		out[i] = val * inv
	}
	return out
}

// Norm returns the Euclidean norm of v.
func Norm(v []float32) float64 {
	var sum float64
	for _, val := range v {
		sum += float64(val) * float64(val)
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of equal-length vectors.
func Dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// CosineBatch computes the cosine similarity of every row against a
// unit-length query vector in one batched pass: per-row norms are
// computed first (zero norms guarded to 1), then a single dot-product
// sweep. Rows whose dimensionality differs from the query yield -1 so
// callers can skip malformed stored vectors without failing the batch.
// Scores are clamped to [0,1].
func CosineBatch(rows [][]float32, unitQuery []float32) []float64 {
	scores := make([]float64, len(rows))
	norms := make([]float64, len(rows))
	for i, row := range rows {
		n := Norm(row)
		if n == 0 {
			n = 1
		}
		norms[i] = n
	}
	for i, row := range rows {
		if len(row) != len(unitQuery) {
			scores[i] = -1
			continue
		}
		scores[i] = clamp01(Dot(row, unitQuery) / norms[i])
	}
	return scores
}

// Cosine returns the clamped cosine similarity of two raw vectors,
// or -1 when either is empty, zero, or of mismatched dimensionality.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return -1
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return -1
	}
	return clamp01(Dot(a, b) / (na * nb))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
