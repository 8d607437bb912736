// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum's mat package.
//
// Purpose:
//   - Hand a Matrix to gonum kernels (SVD, cross-checks) and bring results back.
//   - Keep the copy explicit: neither direction aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns the logical contents of m as a freshly allocated *mat.Dense.
// Complexity: O(r*c).
func (m *Matrix) ToGonum() *mat.Dense {
	flat := make([]float64, 0, m.rows*m.cols)
	for _, row := range m.rowLines() {
		flat = append(flat, row...)
	}

	return mat.NewDense(m.rows, m.cols, flat)
}

// FromGonum copies any gonum mat.Matrix into a Matrix stored under o.
//
// Errors:
//   - ErrEmpty for a zero-sized source, ErrBadOrientation for an invalid o.
//   - ErrNaNInf when WithValidateNaNInf is set and an entry is not finite.
func FromGonum(g mat.Matrix, o Orientation, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrEmpty))
	}

	m, err := build(slicesToVectors(gonumLines(g, o)), o, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return m, nil
}

// fromDense adopts a gonum result computed from a validated Matrix.
func fromDense(d *mat.Dense, o Orientation, opts Options) *Matrix {
	return fromLines(gonumLines(d, o), o, opts)
}

// gonumLines reads g as storage lines for orientation o (rows for Row, columns otherwise).
func gonumLines(g mat.Matrix, o Orientation) [][]float64 {
	r, c := g.Dims()
	if o == Col {
		lines := make([][]float64, c)
		for j := range lines {
			lines[j] = make([]float64, r)
			for i := 0; i < r; i++ {
				lines[j][i] = g.At(i, j)
			}
		}
		return lines
	}

	lines := make([][]float64, r)
	for i := range lines {
		lines[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			lines[i][j] = g.At(i, j)
		}
	}

	return lines
}
