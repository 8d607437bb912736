// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small broadcast kernels (row/column subtract and scale) shared by
//     the statistical transforms, plus the public sanitizers ReplaceInfNaN and Clip.
//   - Keep loops deterministic: fixed i→j order over logical rows.
//
// Broadcast kernels mutate the row slices they are given; callers pass fresh
// slices from rowLines, never storage.

package matrix

import (
	"fmt"
	"math"
)

const (
	opReplaceInfNaN = "ReplaceInfNaN"
	opClip          = "Clip"
)

// subCols computes rows[i][j] -= colMeans[j].
func subCols(rows [][]float64, colMeans []float64) {
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] -= colMeans[j]
		}
	}
}

// subRows computes rows[i][j] -= rowMeans[i].
func subRows(rows [][]float64, rowMeans []float64) {
	for i := range rows {
		mu := rowMeans[i]
		for j := range rows[i] {
			rows[i][j] -= mu
		}
	}
}

// scaleCols computes rows[i][j] *= scale[j].
func scaleCols(rows [][]float64, scale []float64) {
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] *= scale[j]
		}
	}
}

// scaleRows computes rows[i][j] *= scale[i].
func scaleRows(rows [][]float64, scale []float64) {
	for i := range rows {
		sf := scale[i]
		for j := range rows[i] {
			rows[i][j] *= sf
		}
	}
}

// ReplaceInfNaN returns a copy of m with every NaN or ±Inf entry replaced by val.
// val must be finite; otherwise ErrNaNInf.
func (m *Matrix) ReplaceInfNaN(val float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf(opReplaceInfNaN, fmt.Errorf("replacement %g: %w", val, ErrNaNInf))
	}

	return m.Apply(func(x float64) float64 {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return val
		}
		return x
	})
}

// Clip returns a copy of m with every entry clamped into [lo, hi].
// Bounds must be finite (ErrNaNInf otherwise); lo > hi is normalized by swapping.
// NaN entries stay NaN.
func (m *Matrix) Clip(lo, hi float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return m.Apply(func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	})
}
