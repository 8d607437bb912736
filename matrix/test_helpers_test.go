// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures.
//
// Purpose:
//   - Build small matrices without repeating error plumbing in every test.
//   - Keep random data deterministic (fixed seeds) and well-conditioned.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperla/matrix"
)

// Tolerances for floating-point comparisons of factorization results.
const (
	rtol = 1e-9
	atol = 1e-9
)

// mustRows builds a Row-oriented matrix or fails the test.
func mustRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// mustCols builds a Col-oriented matrix or fails the test.
func mustCols(t *testing.T, cols [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromCols(cols, opts...)
	require.NoError(t, err)

	return m
}

// mustAt reads a logical entry or fails the test.
func mustAt(t *testing.T, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// logical returns the entries of m as row slices (logical layout).
func logical(t *testing.T, m *matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = mustAt(t, m, i, j)
		}
	}

	return out
}

// requireClose asserts AllClose(got, want) under the package tolerances.
func requireClose(t *testing.T, want, got *matrix.Matrix) {
	t.Helper()
	ok, err := got.AllClose(want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%vgot:\n%v", want, got)
}

// randomRows returns an r×c slice of values in [-10, 10).
func randomRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return rows
}

// intRows returns an r×c slice of small integers, so products are exact.
func intRows(rng *rand.Rand, r, c int) [][]float64 {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return rows
}

// diagonallyDominant returns a random n×n matrix with |a_ii| > Σ_{j≠i} |a_ij|,
// which is always non-singular.
func diagonallyDominant(rng *rand.Rand, n int) [][]float64 {
	rows := randomRows(rng, n, n)
	for i := range rows {
		var s float64
		for j, x := range rows[i] {
			if j != i {
				if x < 0 {
					x = -x
				}
				s += x
			}
		}
		rows[i][i] = s + 1
	}

	return rows
}

// asOrient returns m stored under o.
func asOrient(t *testing.T, m *matrix.Matrix, o matrix.Orientation) *matrix.Matrix {
	t.Helper()
	out, err := m.As(o)
	require.NoError(t, err)

	return out
}
