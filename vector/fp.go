// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/hyperla/algebra"

var _ algebra.FP[Vector, float64] = Vector{}

// Map returns a new Vector with f applied to every element.
// The error is always nil for vectors; it exists to satisfy algebra.FP.
func (v Vector) Map(f func(float64) float64) (Vector, error) {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return wrap(out), nil
}

// ZipWith returns a new Vector with out[i] = g(v[i], other[i]).
// Returns *LengthError (ErrLengthMismatch) when lengths differ.
func (v Vector) ZipWith(g func(float64, float64) float64, other Vector) (Vector, error) {
	if err := checkSameLength(opZipWith, v, other); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = g(v.data[i], other.data[i])
	}

	return wrap(out), nil
}

// Reduce left-folds g over the elements starting from seed:
// g(...g(g(seed, v[0]), v[1])..., v[n-1]). An empty vector yields seed.
func (v Vector) Reduce(g func(float64, float64) float64, seed float64) float64 {
	acc := seed
	for _, x := range v.data {
		acc = g(acc, x)
	}

	return acc
}

// Sum returns Σ v[i] accumulated left to right.
func (v Vector) Sum() float64 {
	return v.Reduce(func(acc, x float64) float64 { return acc + x }, 0)
}
