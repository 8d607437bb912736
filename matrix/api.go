// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the Matrix methods.
//   - Keep a single implementation: every facade delegates to the method.
//
// Policy:
//   - Facades never change the numeric policy; results inherit the policy of
//     the first (or only) operand.
//   - nil operands are rejected with ErrNilMatrix before delegation.

package matrix

import "github.com/katalvlaran/hyperla/algebra"

// Sum returns a + b. See (*Matrix).Add.
func Sum(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Diff returns a - b. See (*Matrix).Sub.
func Diff(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Sub(b)
}

// Product returns a × b. See (*Matrix).Mul.
func Product(a, b *Matrix) (*Matrix, error) {
	return a.Mul(b) // ValidateMulCompatible covers nil operands
}

// Transposed returns mᵀ in m's orientation.
func Transposed(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}

// Determinant returns det(m). See (*Matrix).Det.
func Determinant(m *Matrix) (float64, error) {
	return m.Det() // ValidateSquare covers nil
}

// LUDecompose returns the pivoted factorization P·m·Q = L·U.
func LUDecompose(m *Matrix) (algebra.LUDecomposition[*Matrix], error) {
	return m.LU()
}

// InverseOf returns m⁻¹. See (*Matrix).Inverse.
func InverseOf(m *Matrix) (*Matrix, error) {
	return m.Inverse()
}

// PseudoInverseOf returns the Moore–Penrose pseudo-inverse m⁺.
func PseudoInverseOf(m *Matrix) (*Matrix, error) {
	return m.PseudoInverse()
}

// BlockSplit returns the quadrants (A11, A12, A21, A22) of m. See (*Matrix).Block.
func BlockSplit(m *Matrix) (a11, a12, a21, a22 *Matrix, err error) {
	return m.Block()
}
