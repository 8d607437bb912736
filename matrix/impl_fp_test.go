// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperla/matrix"
	"github.com/katalvlaran/hyperla/vector"
)

func TestMap_StorageVectors(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	doubled, err := m.Map(func(v vector.Vector) vector.Vector { return v.Scale(2) })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, logical(t, doubled))

	// Growing every row keeps the matrix rectangular.
	wide, err := m.Map(func(v vector.Vector) vector.Vector {
		return vector.FromSlice(append(v.Values(), 0))
	})
	require.NoError(t, err)
	require.Equal(t, 3, wide.Cols())

	_, err = m.Map(func(v vector.Vector) vector.Vector {
		if x, _ := v.At(0); x == 1 {
			return vector.New(1)
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = m.Map(func(vector.Vector) vector.Vector { return vector.New() })
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestZipWith_AlignsOrientation(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustCols(t, [][]float64{{10, 30}, {20, 40}}) // logical [[10,20],[30,40]]

	out, err := a.ZipWith(func(v, w vector.Vector) vector.Vector {
		s, _ := v.Add(w)
		return s
	}, b)
	require.NoError(t, err)
	require.Equal(t, matrix.Row, out.Orientation())
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, logical(t, out))

	_, err = a.ZipWith(func(v, _ vector.Vector) vector.Vector { return v }, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestReduce_ColumnSums(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	seed, err := vector.Zeros(2)
	require.NoError(t, err)

	sums := m.Reduce(func(acc, v vector.Vector) vector.Vector {
		s, _ := acc.Add(v)
		return s
	}, seed)
	require.Equal(t, []float64{9, 12}, sums.Values())
}

func TestApply(t *testing.T) {
	m := mustCols(t, [][]float64{{1, 4}, {9, 16}})
	r, err := m.Apply(math.Sqrt)
	require.NoError(t, err)
	require.Equal(t, matrix.Col, r.Orientation())
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, logical(t, r))

	neg := mustRows(t, [][]float64{{-1}}, matrix.WithValidateNaNInf())
	_, err = neg.Apply(math.Sqrt)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Default policy lets NaN through.
	r, err = mustRows(t, [][]float64{{-1}}).Apply(math.Sqrt)
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt(t, r, 0, 0)))
}

func TestCombine(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 5}, {7, 2}})
	b := mustCols(t, [][]float64{{3, 3}, {3, 3}})
	out, err := a.Combine(math.Max, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 5}, {7, 3}}, logical(t, out))

	_, err = a.Combine(math.Max, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
