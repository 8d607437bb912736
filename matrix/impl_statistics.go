// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms over the logical matrix, treating
//     rows as observations and columns as features.
//   - Compose the canonical kernels (Mul, Transpose, Scale) with the broadcast
//     helpers in ops_elementwise.go.
//
// Exposed API:
//   - CenterColumns()   -> (Xc, means)         // subtract per-column mean
//   - CenterRows()      -> (Xc, means)         // subtract per-row mean
//   - NormalizeRowsL1() -> (Y, norms)          // L1 row normalization (zero rows unchanged)
//   - NormalizeRowsL2() -> (Y, norms)          // L2 row normalization (zero rows unchanged)
//   - Covariance()      -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation()     -> (Corr, means, stds) // Pearson correlation; std == 0 gives a zero row/column
//
// All results keep the receiver's orientation and policy.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperla/vector"
)

const (
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

// lineMeans returns Σ line / len(line) for each line.
func lineMeans(lines [][]float64) []float64 {
	means := make([]float64, len(lines))
	for k, line := range lines {
		means[k] = vector.FromSlice(line).Sum() / float64(len(line))
	}

	return means
}

// fromRowsLike adopts logical rows under m's orientation and policy.
func (m *Matrix) fromRowsLike(rows [][]float64) *Matrix {
	return fromLines(rows, Row, m.opts).aligned(m.orient)
}

// CenterColumns subtracts the per-column mean from every entry.
// Returns the centered copy and the column means (len = Cols()).
// Complexity: O(r*c).
func (m *Matrix) CenterColumns() (*Matrix, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := lineMeans(m.colLines())
	rows := m.rowLines()
	subCols(rows, means)

	return m.fromRowsLike(rows), means, nil
}

// CenterRows subtracts the per-row mean from every entry.
// Returns the centered copy and the row means (len = Rows()).
func (m *Matrix) CenterRows() (*Matrix, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	rows := m.rowLines()
	means := lineMeans(rows)
	subRows(rows, means)

	return m.fromRowsLike(rows), means, nil
}

// NormalizeRowsL1 divides every row by Σ|x|. Rows with norm 0 are left unchanged.
// Returns the normalized copy and the row norms.
func (m *Matrix) NormalizeRowsL1() (*Matrix, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return m.normalizeRows(func(row vector.Vector) float64 {
		return row.Reduce(func(acc, x float64) float64 { return acc + math.Abs(x) }, 0)
	})
}

// NormalizeRowsL2 divides every row by √(Σx²). Rows with norm 0 are left unchanged.
// Returns the normalized copy and the row norms.
func (m *Matrix) NormalizeRowsL2() (*Matrix, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return m.normalizeRows(func(row vector.Vector) float64 {
		return math.Sqrt(row.Reduce(func(acc, x float64) float64 { return acc + x*x }, 0))
	})
}

// normalizeRows scales row i by 1/norm(row i), skipping zero norms.
func (m *Matrix) normalizeRows(norm func(vector.Vector) float64) (*Matrix, []float64, error) {
	rows := m.rowLines()
	norms := make([]float64, len(rows))
	inv := make([]float64, len(rows))
	for i, row := range rows {
		norms[i] = norm(vector.FromSlice(row))
		inv[i] = 1
		if norms[i] > 0 {
			inv[i] = 1 / norms[i]
		}
	}
	scaleRows(rows, inv)

	return m.fromRowsLike(rows), norms, nil
}

// Covariance returns the c×c sample covariance of the columns,
// (Xcᵀ·Xc)/(r-1), and the column means used for centering.
//
// Errors:
//   - ErrNilMatrix; ErrBadShape when there are fewer than two rows.
//
// Complexity: O(r*c^2).
func (m *Matrix) Covariance() (*Matrix, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if m.rows < 2 {
		return nil, nil, matrixErrorf(opCovariance, fmt.Errorf("%d observations: %w", m.rows, ErrBadShape))
	}
	xc, means, err := m.CenterColumns()
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	g, err := xc.T().Mul(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return g.Scale(1 / float64(m.rows-1)).aligned(m.orient), means, nil
}

// Correlation returns the c×c Pearson correlation of the columns together
// with the column means and sample standard deviations. A column with zero
// deviation yields a zero row and column (its diagonal entry is 0, not 1).
//
// Errors:
//   - ErrNilMatrix; ErrBadShape when there are fewer than two rows.
func (m *Matrix) Correlation() (*Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	if m.rows < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, fmt.Errorf("%d observations: %w", m.rows, ErrBadShape))
	}

	cols := m.colLines()
	means := lineMeans(cols)
	stds := make([]float64, len(cols))
	invStd := make([]float64, len(cols))
	for j, col := range cols {
		var ss float64
		for _, x := range col {
			d := x - means[j]
			ss += d * d
		}
		stds[j] = math.Sqrt(ss / float64(m.rows-1))
		if stds[j] > 0 {
			invStd[j] = 1 / stds[j]
		}
	}

	rows := m.rowLines()
	subCols(rows, means)
	scaleCols(rows, invStd)
	z := fromLines(rows, Row, m.opts)

	g, err := z.T().Mul(z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return g.Scale(1 / float64(m.rows-1)).aligned(m.orient), means, stds, nil
}
