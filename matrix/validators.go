// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape/nil checks.
//   - Keep kernels minimal by delegating guards here.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil -> Shape).
//   - ValidateNotNil returns the plain sentinel; shape validators return
//     *DimensionError tagged with the caller's operation.

package matrix

import "fmt"

// ValidateNotNil ensures m is non-nil. Returns ErrNilMatrix otherwise.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share the logical shape.
// Orientation may differ.
func ValidateSameShape(op string, a, b *Matrix) error {
	if a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return newDimensionError(op, a, b)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return newDimensionError(opMul, a, b)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and rows == cols.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.rows != m.cols {
		return fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	return nil
}
