// SPDX-License-Identifier: MIT

package algebra

// FP is the functional combinator capability.
//
// T is the container type and E its element type: a Vector maps over float64
// scalars, a Matrix maps over its storage vectors.
//
//   - Map applies f to every element and returns a container of the same shape.
//   - ZipWith applies g pairwise; the shapes of the receiver and other must match.
//   - Reduce left-folds g over the elements starting from seed.
//
// Map and ZipWith report errors instead of panicking: a shape mismatch, or a
// mapped result that would break the container invariants.
type FP[T any, E any] interface {
	Map(f func(E) E) (T, error)
	ZipWith(g func(E, E) E, other T) (T, error)
	Reduce(g func(E, E) E, seed E) E
}

// Swap records one row (or column) interchange i <-> j performed during
// pivoting, in the order it was applied.
type Swap struct {
	I, J int
}

// Perms is an ordered list of interchanges.
type Perms []Swap

// Parity returns +1 for an even number of effective swaps and -1 for odd.
// Swaps with I == J are no-ops and do not flip the sign.
func (p Perms) Parity() float64 {
	sign := 1.0
	for _, s := range p {
		if s.I != s.J {
			sign = -sign
		}
	}

	return sign
}

// Apply returns the permutation of 0..n-1 produced by applying the swaps in
// order, i.e. out[k] is the original index that ends up at position k.
func (p Perms) Apply(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for _, s := range p {
		out[s.I], out[s.J] = out[s.J], out[s.I]
	}

	return out
}

// LUDecomposition is the result of a pivoted LU factorization
// P·A·Q = L·U, where P applies RowPerms and Q applies ColPerms.
type LUDecomposition[T any] struct {
	RowPerms Perms
	ColPerms Perms
	L        T // unit lower triangular
	U        T // upper triangular
}

// LinearAlgebra is the linear-algebra capability of a matrix type T.
type LinearAlgebra[T any] interface {
	// Transpose returns the logical transpose.
	Transpose() T
	// T is shorthand for Transpose.
	T() T
	// Norm computes the norm selected by n.
	Norm(n Norm) (float64, error)
	// Det returns the determinant of a square matrix.
	Det() (float64, error)
	// LU returns a pivoted factorization of a square matrix.
	LU() (LUDecomposition[T], error)
	// Block splits the matrix into four quadrants (A11, A12, A21, A22).
	Block() (T, T, T, T, error)
	// Inverse returns A⁻¹ of a square, non-singular matrix.
	Inverse() (T, error)
	// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺.
	PseudoInverse() (T, error)
}
