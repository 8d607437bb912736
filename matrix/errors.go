// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with an
// operation tag via matrixErrorf); tests match them with errors.Is. Nothing in
// the public surface panics on user input. Option constructors are the single
// exception: they panic on nonsensical parameters (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a matrix would have zero rows or zero columns.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrRagged indicates storage vectors of unequal length.
	ErrRagged = errors.New("matrix: vectors differ in length")

	// ErrBadOrientation indicates an orientation tag other than Row or Col.
	ErrBadOrientation = errors.New("matrix: invalid orientation")

	// ErrOutOfRange indicates that an index (row, column or storage) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadShape signals a shape the operation cannot work with (e.g. Block on a single row).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrSingular is returned when elimination finds no pivot above the tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: SVD factorization failed")
)

// DimensionError describes incompatible operand shapes of a binary operation.
// It unwraps to ErrDimensionMismatch, so errors.Is keeps working.
type DimensionError struct {
	Op                   string
	LeftRows, LeftCols   int
	RightRows, RightCols int
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %dx%d vs %dx%d: %v",
		e.Op, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols, ErrDimensionMismatch)
}

// Unwrap exposes ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// newDimensionError captures the logical shapes of both operands.
func newDimensionError(op string, a, b *Matrix) *DimensionError {
	return &DimensionError{
		Op:        op,
		LeftRows:  a.rows,
		LeftCols:  a.cols,
		RightRows: b.rows,
		RightCols: b.cols,
	}
}
