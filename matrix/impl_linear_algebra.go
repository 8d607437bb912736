// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra capability of Matrix:
// transpose and norms (impl_shape.go, impl_norm.go) plus the factorization
// kernels in this file.
//
// Purpose:
//   - LU with complete pivoting (P·A·Q = L·U) as the single elimination kernel.
//   - Det and Inverse derived from the same compact factors.
//   - Block split/assembly and a Moore–Penrose pseudo-inverse via gonum's SVD.
//
// Notes:
//   - Pivot tolerance is relative: a pivot p is rejected when
//     |p| <= eps * max|a_ij| (eps from WithEpsilon, DefaultEpsilon otherwise).
//   - All loops run in fixed order; results are deterministic.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperla/algebra"
)

var _ algebra.LinearAlgebra[*Matrix] = (*Matrix)(nil)

// luFactors is the compact result of elimination: a holds L strictly below the
// diagonal (unit diagonal implied) and U on and above it, for P·A·Q.
type luFactors struct {
	a        [][]float64
	rowPerms algebra.Perms
	colPerms algebra.Perms
}

// factorize runs Gaussian elimination with complete pivoting on a copy of m.
//
// Implementation:
//   - Stage 1: validate square; copy logical rows; derive the pivot tolerance.
//   - Stage 2: for k = 0..n-1 pick the largest |a_ij| in the trailing
//     submatrix, swap it to (k,k) with one row and one column interchange,
//     then eliminate below the pivot storing multipliers in place.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no pivot above tolerance).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Matrix) factorize() (*luFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	n := m.rows
	a := m.rowLines()
	tol := m.opts.eps * m.maxAbs()
	f := &luFactors{a: a}

	var (
		i, j, k int
		pi, pj  int
		best, v float64
		pivot   float64
		l       float64
	)
	for k = 0; k < n; k++ {
		// Complete pivot search over the trailing submatrix, row-major order.
		pi, pj, best = k, k, -1
		for i = k; i < n; i++ {
			for j = k; j < n; j++ {
				if v = math.Abs(a[i][j]); v > best {
					pi, pj, best = i, j, v
				}
			}
		}
		if best <= tol {
			return nil, fmt.Errorf("step %d: pivot %g <= %g: %w", k, best, tol, ErrSingular)
		}

		if pi != k {
			a[k], a[pi] = a[pi], a[k]
			f.rowPerms = append(f.rowPerms, algebra.Swap{I: k, J: pi})
		}
		if pj != k {
			for i = 0; i < n; i++ {
				a[i][k], a[i][pj] = a[i][pj], a[i][k]
			}
			f.colPerms = append(f.colPerms, algebra.Swap{I: k, J: pj})
		}

		pivot = a[k][k]
		for i = k + 1; i < n; i++ {
			a[i][k] /= pivot
			l = a[i][k]
			if l == 0 {
				continue // nothing to eliminate in this row
			}
			for j = k + 1; j < n; j++ {
				a[i][j] -= l * a[k][j]
			}
		}
	}

	return f, nil
}

// LU returns the pivoted factorization P·A·Q = L·U of a square matrix.
// RowPerms/ColPerms list the interchanges in the order applied; L is unit
// lower triangular, U upper triangular, both in m's orientation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "LU").
func (m *Matrix) LU() (algebra.LUDecomposition[*Matrix], error) {
	f, err := m.factorize()
	if err != nil {
		return algebra.LUDecomposition[*Matrix]{}, matrixErrorf(opLU, err)
	}

	n := len(f.a)
	lower := make([][]float64, n)
	upper := make([][]float64, n)
	for i := 0; i < n; i++ {
		lower[i] = make([]float64, n)
		upper[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				lower[i][j] = f.a[i][j]
			case j == i:
				lower[i][j] = 1
				upper[i][j] = f.a[i][j]
			default:
				upper[i][j] = f.a[i][j]
			}
		}
	}

	return algebra.LUDecomposition[*Matrix]{
		RowPerms: f.rowPerms,
		ColPerms: f.colPerms,
		L:        fromLines(lower, Row, m.opts).aligned(m.orient),
		U:        fromLines(upper, Row, m.opts).aligned(m.orient),
	}, nil
}

// Det returns the determinant of a square matrix:
// parity(RowPerms) * parity(ColPerms) * Π U[k,k].
// A matrix that is singular within the pivot tolerance has determinant 0
// and no error.
func (m *Matrix) Det() (float64, error) {
	f, err := m.factorize()
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	det := f.rowPerms.Parity() * f.colPerms.Parity()
	for k := range f.a {
		det *= f.a[k][k]
	}

	return det, nil
}

// Inverse returns A⁻¹ in m's orientation, solving A·x = e_j through the LU
// factors for every unit vector e_j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "Inverse").
//
// Complexity: O(n^3).
func (m *Matrix) Inverse() (*Matrix, error) {
	f, err := m.factorize()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := len(f.a)
	rowIdx := f.rowPerms.Apply(n) // (P·b)[k] = b[rowIdx[k]]
	colIdx := f.colPerms.Apply(n) // x[colIdx[k]] = z[k]
	cols := make([][]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)

	var i, j, e int
	var s float64
	for e = 0; e < n; e++ {
		// Forward substitution L·y = P·e_e.
		for i = 0; i < n; i++ {
			s = 0
			if rowIdx[i] == e {
				s = 1
			}
			for j = 0; j < i; j++ {
				s -= f.a[i][j] * y[j]
			}
			y[i] = s
		}
		// Back substitution U·z = y.
		for i = n - 1; i >= 0; i-- {
			s = y[i]
			for j = i + 1; j < n; j++ {
				s -= f.a[i][j] * z[j]
			}
			z[i] = s / f.a[i][i]
		}
		// Undo the column permutation.
		x := make([]float64, n)
		for i = 0; i < n; i++ {
			x[colIdx[i]] = z[i]
		}
		cols[e] = x
	}

	return fromLines(cols, Col, m.opts).aligned(m.orient), nil
}

// Block splits m into quadrants at r1 = ⌊rows/2⌋ and c1 = ⌊cols/2⌋:
//
//	| A11 (r1×c1)       A12 (r1×(c-c1))     |
//	| A21 ((r-r1)×c1)   A22 ((r-r1)×(c-c1)) |
//
// Every block keeps m's orientation. Requires at least 2 rows and 2 columns.
func (m *Matrix) Block() (*Matrix, *Matrix, *Matrix, *Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opBlock, err)
	}
	if m.rows < 2 || m.cols < 2 {
		return nil, nil, nil, nil, matrixErrorf(opBlock, fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrBadShape))
	}

	rows := m.rowLines()
	r1, c1 := m.rows/2, m.cols/2
	sub := func(r0, rEnd, c0, cEnd int) *Matrix {
		lines := make([][]float64, 0, rEnd-r0)
		for i := r0; i < rEnd; i++ {
			lines = append(lines, rows[i][c0:cEnd])
		}
		return fromLines(lines, Row, m.opts).aligned(m.orient)
	}

	return sub(0, r1, 0, c1), sub(0, r1, c1, m.cols), sub(r1, m.rows, 0, c1), sub(r1, m.rows, c1, m.cols), nil
}

// FromBlocks assembles [[a11, a12], [a21, a22]] into one matrix with a11's
// orientation and policy. It is the inverse of Block.
// Returns *DimensionError when neighbouring blocks do not line up.
func FromBlocks(a11, a12, a21, a22 *Matrix) (*Matrix, error) {
	for _, b := range []*Matrix{a11, a12, a21, a22} {
		if b == nil {
			return nil, matrixErrorf(opFromBlocks, ErrNilMatrix)
		}
	}
	switch {
	case a11.rows != a12.rows:
		return nil, newDimensionError(opFromBlocks, a11, a12)
	case a21.rows != a22.rows:
		return nil, newDimensionError(opFromBlocks, a21, a22)
	case a11.cols != a21.cols:
		return nil, newDimensionError(opFromBlocks, a11, a21)
	case a12.cols != a22.cols:
		return nil, newDimensionError(opFromBlocks, a12, a22)
	}

	top := joinRows(a11.rowLines(), a12.rowLines())
	bottom := joinRows(a21.rowLines(), a22.rowLines())

	return fromLines(append(top, bottom...), Row, a11.opts).aligned(a11.orient), nil
}

// joinRows concatenates left[i] and right[i] for every i.
func joinRows(left, right [][]float64) [][]float64 {
	out := make([][]float64, len(left))
	for i := range left {
		line := make([]float64, 0, len(left[i])+len(right[i]))
		line = append(line, left[i]...)
		out[i] = append(line, right[i]...)
	}

	return out
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ = V·Σ⁺·Uᵀ
// (shape cols×rows, m's orientation) from gonum's thin SVD.
// Singular values <= eps * max(rows, cols) * σ_max are treated as zero.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed (wrapped with "PseudoInverse").
func (m *Matrix) PseudoInverse() (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.ToGonum(), mat.SVDThin); !ok {
		return nil, matrixErrorf(opPseudoInverse, ErrSVDFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	maxS := 0.0
	for _, si := range s {
		if si > maxS {
			maxS = si
		}
	}
	cutoff := m.opts.eps * float64(max(m.rows, m.cols)) * maxS

	sp := mat.NewDense(len(s), len(s), nil)
	for i, si := range s {
		if si > cutoff {
			sp.Set(i, i, 1/si)
		}
	}

	var vSp, pinv mat.Dense
	vSp.Mul(&v, sp)
	pinv.Mul(&vSp, u.T())

	return fromDense(&pinv, m.orient, m.opts), nil
}
