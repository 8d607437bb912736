// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that a binary operation received vectors of
	// different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidLength indicates a negative requested length.
	ErrInvalidLength = errors.New("vector: length must be >= 0")
)

// Operation tags used in error contexts.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opDot      = "Dot"
	opHadamard = "Hadamard"
	opZipWith  = "ZipWith"
	opAllClose = "AllClose"
	opAt       = "At"
)

// LengthError describes a length mismatch between two operands.
// It unwraps to ErrLengthMismatch.
type LengthError struct {
	Op          string
	Left, Right int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%s(%d, %d): %v", e.Op, e.Left, e.Right, ErrLengthMismatch)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// checkSameLength returns a *LengthError when a and b differ in length.
func checkSameLength(op string, a, b Vector) error {
	if len(a.data) != len(b.data) {
		return &LengthError{Op: op, Left: len(a.data), Right: len(b.data)}
	}

	return nil
}
