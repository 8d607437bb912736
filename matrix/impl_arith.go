// SPDX-License-Identifier: MIT

// Package matrix - arithmetic kernels.
//
// Add and Sub are ZipWith over vector addition/subtraction. Mul normalizes any
// orientation pairing to Row×Col and takes one dot product per result entry;
// the inner dimension is checked before any work is done.
package matrix

import (
	"github.com/katalvlaran/hyperla/vector"
	"golang.org/x/sync/errgroup"
)

// Add returns the element-wise sum m + b in m's orientation.
// Returns *DimensionError (ErrDimensionMismatch) when shapes differ.
// Complexity: O(r*c).
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	return m.zipWith(opAdd, func(v, w vector.Vector) vector.Vector {
		out, _ := v.Add(w) // lengths equal after shape validation
		return out
	}, b)
}

// Sub returns the element-wise difference m - b in m's orientation.
// Returns *DimensionError (ErrDimensionMismatch) when shapes differ.
// Complexity: O(r*c).
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	return m.zipWith(opSub, func(v, w vector.Vector) vector.Vector {
		out, _ := v.Sub(w) // lengths equal after shape validation
		return out
	}, b)
}

// Hadamard returns the element-wise product m ⊙ b in m's orientation.
func (m *Matrix) Hadamard(b *Matrix) (*Matrix, error) {
	return m.zipWith(opHadamard, func(v, w vector.Vector) vector.Vector {
		out, _ := v.Hadamard(w) // lengths equal after shape validation
		return out
	}, b)
}

// Scale returns alpha * m.
func (m *Matrix) Scale(alpha float64) *Matrix {
	out := make([]vector.Vector, len(m.data))
	for k, v := range m.data {
		out[k] = v.Scale(alpha)
	}

	return &Matrix{data: out, rows: m.rows, cols: m.cols, orient: m.orient, opts: m.opts}
}

// Mul returns the matrix product m × b as a Row-oriented matrix of shape
// (m.Rows() × b.Cols()).
//
// Implementation:
//   - Stage 1: validate m.Cols() == b.Rows(); otherwise *DimensionError.
//   - Stage 2: align m to Row and b to Col (ChangeShape only when needed).
//   - Stage 3: out[i][j] = row_i(m) · col_j(b), one accumulator per entry
//     summed in k order.
//
// With WithWorkers(n > 1) on m, result rows are computed by up to n
// goroutines; each row is written by exactly one goroutine, so the result is
// bit-identical to the sequential path.
//
// Complexity: O(r*n*c) time, O(r*c + n*(r+c)) space.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, err
	}

	left := m.aligned(Row).lines()  // r lines of length n
	right := b.aligned(Col).lines() // c lines of length n
	out := make([][]float64, len(left))

	rowKernel := func(i int) {
		row := make([]float64, len(right))
		for j, col := range right {
			row[j] = dot(left[i], col)
		}
		out[i] = row
	}

	if workers := m.opts.workers; workers > 1 && len(left) > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range left {
			g.Go(func() error {
				rowKernel(i)
				return nil
			})
		}
		_ = g.Wait() // kernels never fail; shapes were validated
	} else {
		for i := range left {
			rowKernel(i)
		}
	}

	return fromLines(out, Row, m.opts), nil
}

// dot is the Mul inner kernel: Σ a[k]*b[k] accumulated in k order.
func dot(a, b []float64) float64 {
	var s float64
	for k := range a {
		s += a[k] * b[k]
	}

	return s
}

// MulVec returns y = m·x as a vector of length m.Rows().
// Returns *DimensionError when x.Len() != m.Cols() (x is reported as Len()×1).
func (m *Matrix) MulVec(x vector.Vector) (vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return vector.Vector{}, matrixErrorf(opMulVec, err)
	}
	if x.Len() != m.cols {
		return vector.Vector{}, &DimensionError{
			Op: opMulVec, LeftRows: m.rows, LeftCols: m.cols, RightRows: x.Len(), RightCols: 1,
		}
	}
	xs := x.Values()
	rows := m.rowLines()
	y := make([]float64, len(rows))
	for i, row := range rows {
		y[i] = dot(row, xs)
	}

	return vector.FromSlice(y), nil
}

// Trace returns Σ m[i,i] of a square matrix.
func (m *Matrix) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var s float64
	for k, v := range m.data {
		x, _ := v.At(k) // diagonal index is in range for square matrices
		s += x
	}

	return s, nil
}
