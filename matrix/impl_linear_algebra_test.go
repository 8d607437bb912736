// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperla/algebra"
	"github.com/katalvlaran/hyperla/matrix"
)

// LinearAlgebraSuite cross-checks the factorization kernels against gonum on
// a fixed set of square and rectangular fixtures.
type LinearAlgebraSuite struct {
	suite.Suite
	rng *rand.Rand
}

func TestLinearAlgebraSuite(t *testing.T) {
	suite.Run(t, new(LinearAlgebraSuite))
}

func (s *LinearAlgebraSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

func (s *LinearAlgebraSuite) rows(r [][]float64, o matrix.Orientation, opts ...matrix.Option) *matrix.Matrix {
	m, err := matrix.FromRows(r, opts...)
	s.Require().NoError(err)
	out, err := m.As(o)
	s.Require().NoError(err)

	return out
}

func (s *LinearAlgebraSuite) close(want, got *matrix.Matrix) {
	ok, err := got.AllClose(want, rtol, atol)
	s.Require().NoError(err)
	s.Require().True(ok, "want:\n%vgot:\n%v", want, got)
}

// permuted returns P·A·Q with P and Q described by the swap lists.
func permuted(a *matrix.Matrix, rp, cp algebra.Perms) [][]float64 {
	n := a.Rows()
	ri, ci := rp.Apply(n), cp.Apply(n)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j], _ = a.At(ri[i], ci[j])
		}
	}

	return out
}

func (s *LinearAlgebraSuite) TestLU_PAQEqualsLU() {
	for _, n := range []int{1, 2, 3, 5, 8} {
		for _, o := range orientations {
			a := s.rows(randomRows(s.rng, n, n), o)
			lu, err := a.LU()
			s.Require().NoError(err)
			s.Equal(o, lu.L.Orientation())

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					l, _ := lu.L.At(i, j)
					u, _ := lu.U.At(i, j)
					switch {
					case i == j:
						s.Equal(1.0, l)
					case j > i:
						s.Zero(l)
					default:
						s.Zero(u)
						s.LessOrEqual(math.Abs(l), 1.0) // complete pivoting bounds multipliers
					}
				}
			}

			prod, err := lu.L.Mul(lu.U)
			s.Require().NoError(err)
			paq, err := matrix.FromRows(permuted(a, lu.RowPerms, lu.ColPerms))
			s.Require().NoError(err)
			s.close(paq, prod)
		}
	}
}

func (s *LinearAlgebraSuite) TestLU_RecordsSwaps() {
	// The largest entry sits at (1, 1), so the first step swaps row 0<->1 and column 0<->1.
	a := s.rows([][]float64{{1, 2}, {3, 9}}, matrix.Row)
	lu, err := a.LU()
	s.Require().NoError(err)
	s.Equal(algebra.Perms{{I: 0, J: 1}}, lu.RowPerms)
	s.Equal(algebra.Perms{{I: 0, J: 1}}, lu.ColPerms)

	u00, _ := lu.U.At(0, 0)
	s.Equal(9.0, u00)
}

func (s *LinearAlgebraSuite) TestDet_MatchesGonum() {
	for _, n := range []int{1, 2, 3, 4, 7} {
		for _, o := range orientations {
			a := s.rows(randomRows(s.rng, n, n), o)
			got, err := a.Det()
			s.Require().NoError(err)

			want := mat.Det(a.ToGonum())
			s.InEpsilon(want, got, 1e-9, "n=%d orientation=%v", n, o)
		}
	}
}

func (s *LinearAlgebraSuite) TestDet_Known() {
	det, err := s.rows([][]float64{{1, 2}, {3, 4}}, matrix.Col).Det()
	s.Require().NoError(err)
	s.InDelta(-2.0, det, 1e-12)

	det, err = s.rows([][]float64{{0, 1}, {1, 0}}, matrix.Row).Det()
	s.Require().NoError(err)
	s.Equal(-1.0, det)

	id, err := matrix.Identity(4)
	s.Require().NoError(err)
	det, err = id.Det()
	s.Require().NoError(err)
	s.Equal(1.0, det)
}

func (s *LinearAlgebraSuite) TestDet_SingularIsZero() {
	for _, r := range [][][]float64{
		{{1, 2}, {2, 4}},
		{{0, 0}, {0, 0}},
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	} {
		det, err := s.rows(r, matrix.Row).Det()
		s.Require().NoError(err)
		s.Zero(det)
	}
}

func (s *LinearAlgebraSuite) TestDet_Epsilon() {
	// det = 1e-10, far below the relative tolerance 1e-6 * 1.
	a := s.rows([][]float64{{1, 1}, {1, 1 + 1e-10}}, matrix.Row)

	det, err := a.With(matrix.WithEpsilon(1e-6)).Det()
	s.Require().NoError(err)
	s.Zero(det)

	det, err = a.With(matrix.WithEpsilon(0)).Det()
	s.Require().NoError(err)
	s.NotZero(det)
}

func (s *LinearAlgebraSuite) TestInverse_TimesAIsIdentity() {
	for _, n := range []int{1, 2, 3, 6, 10} {
		for _, o := range orientations {
			a := s.rows(diagonallyDominant(s.rng, n), o)
			inv, err := a.Inverse()
			s.Require().NoError(err)
			s.Equal(o, inv.Orientation())

			id, err := matrix.Identity(n)
			s.Require().NoError(err)
			left, err := a.Mul(inv)
			s.Require().NoError(err)
			s.close(id, left)
			right, err := inv.Mul(a)
			s.Require().NoError(err)
			s.close(id, right)

			var want mat.Dense
			s.Require().NoError(want.Inverse(a.ToGonum()))
			ref, err := matrix.FromGonum(&want, matrix.Row)
			s.Require().NoError(err)
			s.close(ref, inv)
		}
	}
}

func (s *LinearAlgebraSuite) TestInverse_PermutedInput() {
	// Zero leading entry forces both row and column interchanges.
	a := s.rows([][]float64{{0, 2, 1}, {1, 0, 0}, {3, 1, 5}}, matrix.Row)
	inv, err := a.Inverse()
	s.Require().NoError(err)

	id, err := matrix.Identity(3)
	s.Require().NoError(err)
	prod, err := a.Mul(inv)
	s.Require().NoError(err)
	s.close(id, prod)
}

func (s *LinearAlgebraSuite) TestInverse_Errors() {
	_, err := s.rows([][]float64{{1, 2}, {2, 4}}, matrix.Row).Inverse()
	s.ErrorIs(err, matrix.ErrSingular)

	_, err = s.rows([][]float64{{1, 2, 3}}, matrix.Row).Inverse()
	s.ErrorIs(err, matrix.ErrNonSquare)

	var nilM *matrix.Matrix
	_, err = nilM.Inverse()
	s.ErrorIs(err, matrix.ErrNilMatrix)

	_, err = s.rows([][]float64{{1, 2}}, matrix.Row).LU()
	s.ErrorIs(err, matrix.ErrNonSquare)
	_, err = s.rows([][]float64{{1, 2}}, matrix.Row).Det()
	s.ErrorIs(err, matrix.ErrNonSquare)
}

func (s *LinearAlgebraSuite) TestPseudoInverse_Properties() {
	for _, shape := range [][2]int{{3, 3}, {5, 3}, {3, 5}, {1, 4}} {
		for _, o := range orientations {
			a := s.rows(randomRows(s.rng, shape[0], shape[1]), o)
			pinv, err := a.PseudoInverse()
			s.Require().NoError(err)
			s.Equal(shape[1], pinv.Rows())
			s.Equal(shape[0], pinv.Cols())
			s.Equal(o, pinv.Orientation())

			// A·A⁺·A = A and A⁺·A·A⁺ = A⁺.
			aap, err := a.Mul(pinv)
			s.Require().NoError(err)
			aapa, err := aap.Mul(a)
			s.Require().NoError(err)
			s.close(a, aapa)

			pa, err := pinv.Mul(a)
			s.Require().NoError(err)
			pap, err := pa.Mul(pinv)
			s.Require().NoError(err)
			s.close(pinv, pap)
		}
	}
}

func (s *LinearAlgebraSuite) TestPseudoInverse_SquareMatchesInverse() {
	a := s.rows(diagonallyDominant(s.rng, 4), matrix.Col)
	inv, err := a.Inverse()
	s.Require().NoError(err)
	pinv, err := a.PseudoInverse()
	s.Require().NoError(err)
	s.close(inv, pinv)
}

func (s *LinearAlgebraSuite) TestPseudoInverse_RankDeficient() {
	// Rank one: A = [1 2]ᵀ·[1 1], A⁺ = Aᵀ / ‖A‖²_F = Aᵀ / 10.
	a := s.rows([][]float64{{1, 1}, {2, 2}}, matrix.Row)
	pinv, err := a.PseudoInverse()
	s.Require().NoError(err)
	s.close(a.T().Scale(0.1), pinv)

	zero, err := matrix.Zeros(2, 3, matrix.Row)
	s.Require().NoError(err)
	pz, err := zero.PseudoInverse()
	s.Require().NoError(err)
	want, err := matrix.Zeros(3, 2, matrix.Row)
	s.Require().NoError(err)
	s.True(want.Equal(pz))
}

func (s *LinearAlgebraSuite) TestBlock_RoundTrip() {
	for _, shape := range [][2]int{{2, 2}, {3, 5}, {4, 4}, {7, 2}} {
		for _, o := range orientations {
			a := s.rows(randomRows(s.rng, shape[0], shape[1]), o)
			a11, a12, a21, a22, err := a.Block()
			s.Require().NoError(err)

			r1, c1 := shape[0]/2, shape[1]/2
			s.Equal([2]int{r1, c1}, [2]int{a11.Rows(), a11.Cols()})
			s.Equal([2]int{r1, shape[1] - c1}, [2]int{a12.Rows(), a12.Cols()})
			s.Equal([2]int{shape[0] - r1, c1}, [2]int{a21.Rows(), a21.Cols()})
			s.Equal([2]int{shape[0] - r1, shape[1] - c1}, [2]int{a22.Rows(), a22.Cols()})
			s.Equal(o, a22.Orientation())

			back, err := matrix.FromBlocks(a11, a12, a21, a22)
			s.Require().NoError(err)
			s.True(back.Identical(a), "shape %v orientation %v", shape, o)
		}
	}
}

func (s *LinearAlgebraSuite) TestBlock_Errors() {
	_, _, _, _, err := s.rows([][]float64{{1, 2, 3}}, matrix.Row).Block()
	s.ErrorIs(err, matrix.ErrBadShape)
	_, _, _, _, err = s.rows([][]float64{{1}, {2}}, matrix.Col).Block()
	s.ErrorIs(err, matrix.ErrBadShape)

	a := s.rows([][]float64{{1}}, matrix.Row)
	b := s.rows([][]float64{{1, 2}}, matrix.Row)
	_, err = matrix.FromBlocks(a, a, b, a)
	s.ErrorIs(err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromBlocks(a, nil, a, a)
	s.ErrorIs(err, matrix.ErrNilMatrix)
}
