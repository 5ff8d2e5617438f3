// Package psi implements the coherence metric primitives: the fidelity
// term, the entropy penalty term and the clipping rule that bounds the
// final index. All functions are pure; dimension validation belongs to
// the caller.
package psi

import "math"

// Fidelity returns the squared normalized inner product of a and b:
// F = <a,b>^2 / (|a|^2 * |b|^2). Cauchy-Schwarz bounds F to [0,1]:
// 1 for colinear vectors, 0 for orthogonal ones. When either vector has
// zero norm F is 0 by convention: a zero vector carries no direction, so
// it scores as total incoherence rather than an error.
// F is scale-invariant, so each vector is divided by its largest absolute
// component before the sums are accumulated; the quotient is unchanged
// and the partial sums stay finite for every finite input.
// Both slices must have the same length.
func Fidelity(a, b []float64) float64 {
	scaleA, scaleB := maxAbs(a), maxAbs(b)
	if scaleA == 0 || scaleB == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x := a[i] / scaleA
		y := b[i] / scaleB
		dot += x * y
		normA += x * x
		normB += y * y
	}
	return (dot * dot) / (normA * normB)
}

// Divergence returns the Kullback-Leibler divergence D(p||q) between the
// probability distributions derived from vectors p and q. Each vector
// becomes a distribution by taking absolute values, adding floor to every
// component and normalizing to sum 1. The floor keeps every component
// strictly positive, so the divergence stays finite even when a component
// is exactly zero. The result is non-negative (Gibbs' inequality) and is
// not clipped.
// Both slices must have the same length; floor must be positive.
func Divergence(p, q []float64, floor float64) float64 {
	pd := distribution(p, floor)
	qd := distribution(q, floor)

	var div float64
	for i := range pd {
		div += pd[i] * math.Log(pd[i]/qd[i])
	}
	return div
}

// Clip saturates x into the closed interval [0,1]. Extreme incoherence
// and extreme fidelity both collapse to the boundary instead of leaving
// the range. A non-finite x collapses to 0, the incoherent end of the
// range.
func Clip(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}

// distribution converts a vector into a strictly positive probability
// distribution: |v_i| + floor, normalized to sum 1. The vector is divided
// by its largest absolute component first, so the normalizing sum cannot
// overflow and the floor acts relative to the vector's own scale; the
// distribution of a scaled copy equals the distribution of the original.
// A zero vector maps to the uniform distribution.
func distribution(v []float64, floor float64) []float64 {
	scale := maxAbs(v)
	if scale == 0 {
		scale = 1
	}
	out := make([]float64, len(v))
	var sum float64
	for i, x := range v {
		out[i] = math.Abs(x)/scale + floor
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// maxAbs returns the largest absolute component of v, 0 for an empty or
// all-zero vector.
func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
