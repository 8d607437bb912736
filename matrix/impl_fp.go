// SPDX-License-Identifier: MIT

// Package matrix - functional combinators over storage vectors.
//
// Map, ZipWith and Reduce see the matrix as its list of storage vectors
// (rows under Row, columns under Col). Apply and Combine are the element-level
// counterparts used by Scale and Hadamard.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperla/algebra"
	"github.com/katalvlaran/hyperla/vector"
)

var _ algebra.FP[*Matrix, vector.Vector] = (*Matrix)(nil)

// Map applies f to every storage vector and keeps the orientation.
// f may change the vector length as long as every result has the same
// non-zero length; otherwise ErrRagged or ErrEmpty is returned.
func (m *Matrix) Map(f func(vector.Vector) vector.Vector) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	out := make([]vector.Vector, len(m.data))
	for k, v := range m.data {
		out[k] = f(v)
	}
	res, err := build(out, m.orient, m.opts)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	return res, nil
}

// ZipWith pairs the storage vectors of m and other and applies g.
// other is first aligned to m's orientation, so the pairing is always
// row-with-row (Row) or column-with-column (Col). The logical shapes must
// match; otherwise a *DimensionError is returned.
func (m *Matrix) ZipWith(g func(vector.Vector, vector.Vector) vector.Vector, other *Matrix) (*Matrix, error) {
	return m.zipWith(opZipWith, g, other)
}

// zipWith is ZipWith with a caller-specific error tag.
func (m *Matrix) zipWith(op string, g func(vector.Vector, vector.Vector) vector.Vector, other *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(op, m, other); err != nil {
		return nil, err
	}
	b := other.aligned(m.orient)
	out := make([]vector.Vector, len(m.data))
	for k := range m.data {
		out[k] = g(m.data[k], b.data[k])
	}
	res, err := build(out, m.orient, m.opts)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return res, nil
}

// Reduce left-folds g over the storage vectors starting from seed.
// Reduce over a Row matrix with vector addition yields the column sums.
func (m *Matrix) Reduce(g func(vector.Vector, vector.Vector) vector.Vector, seed vector.Vector) vector.Vector {
	acc := seed
	for _, v := range m.data {
		acc = g(acc, v)
	}

	return acc
}

// Apply returns a matrix with f applied to every entry.
// Under the finite-only policy a non-finite result yields ErrNaNInf.
func (m *Matrix) Apply(f func(float64) float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	lines := m.lines()
	for k, line := range lines {
		for idx, x := range line {
			y := f(x)
			if m.opts.validateNaNInf && (math.IsNaN(y) || math.IsInf(y, 0)) {
				return nil, matrixErrorf(opApply, fmt.Errorf("vector %d, element %d: %w", k, idx, ErrNaNInf))
			}
			line[idx] = y
		}
	}

	return fromLines(lines, m.orient, m.opts), nil
}

// Combine returns a matrix with out[i,j] = g(m[i,j], other[i,j]).
// Shapes must match; orientation may differ.
func (m *Matrix) Combine(g func(float64, float64) float64, other *Matrix) (*Matrix, error) {
	return m.zipWith(opCombine, func(v, w vector.Vector) vector.Vector {
		out, _ := v.ZipWith(g, w) // lengths equal after shape validation
		return out
	}, other)
}
