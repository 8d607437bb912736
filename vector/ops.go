// SPDX-License-Identifier: MIT

package vector

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Add returns v + w element-wise.
// Returns *LengthError (ErrLengthMismatch) when lengths differ.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := checkSameLength(opAdd, v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	if len(out) == 0 {
		return wrap(out), nil
	}
	copy(out, v.data)
	vecmath.AddBlockInPlace(out, w.data)

	return wrap(out), nil
}

// Sub returns v - w element-wise.
// The kernel negates w and adds v; a + (-b) is exactly a - b in IEEE-754.
func (v Vector) Sub(w Vector) (Vector, error) {
	if err := checkSameLength(opSub, v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	if len(out) == 0 {
		return wrap(out), nil
	}
	vecmath.ScaleBlock(out, w.data, -1)
	vecmath.AddBlockInPlace(out, v.data)

	return wrap(out), nil
}

// Hadamard returns the element-wise product v ⊙ w.
func (v Vector) Hadamard(w Vector) (Vector, error) {
	if err := checkSameLength(opHadamard, v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	if len(out) == 0 {
		return wrap(out), nil
	}
	vecmath.MulBlock(out, v.data, w.data)

	return wrap(out), nil
}

// Scale returns alpha * v.
func (v Vector) Scale(alpha float64) Vector {
	out := make([]float64, len(v.data))
	if len(out) == 0 {
		return wrap(out)
	}
	vecmath.ScaleBlock(out, v.data, alpha)

	return wrap(out)
}

// Dot returns the dot product Σ v[i]*w[i].
// The products are accumulated left to right, so the result is deterministic.
func (v Vector) Dot(w Vector) (float64, error) {
	if err := checkSameLength(opDot, v, w); err != nil {
		return 0, err
	}
	if len(v.data) == 0 {
		return 0, nil
	}
	prod := make([]float64, len(v.data))
	vecmath.MulBlock(prod, v.data, w.data)

	return wrap(prod).Sum(), nil
}

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Add is the package-level form of v.Add(w).
func Add(v, w Vector) (Vector, error) { return v.Add(w) }

// Sub is the package-level form of v.Sub(w).
func Sub(v, w Vector) (Vector, error) { return v.Sub(w) }

// Dot is the package-level form of v.Dot(w).
func Dot(v, w Vector) (float64, error) { return v.Dot(w) }
