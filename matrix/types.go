// SPDX-License-Identifier: MIT

// Package matrix: domain types and shared operation tags.
package matrix

import "fmt"

// Orientation tells whether the storage vectors of a Matrix are rows or columns.
type Orientation int

const (
	// Row means data[i] is logical row i.
	Row Orientation = iota
	// Col means data[j] is logical column j.
	Col
)

// String returns "Row", "Col", or a diagnostic form for invalid values.
func (o Orientation) String() string {
	switch o {
	case Row:
		return "Row"
	case Col:
		return "Col"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Opposite returns Col for Row and Row for Col.
func (o Orientation) Opposite() Orientation {
	if o == Row {
		return Col
	}

	return Row
}

// Valid reports whether o is Row or Col.
func (o Orientation) Valid() bool { return o == Row || o == Col }

// Operation name constants for unified error wrapping.
const (
	opNew           = "New"
	opAt            = "At"
	opVector        = "Vector"
	opRow           = "Row"
	opCol           = "Col"
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opHadamard      = "Hadamard"
	opMap           = "Map"
	opZipWith       = "ZipWith"
	opApply         = "Apply"
	opCombine       = "Combine"
	opNorm          = "Norm"
	opTrace         = "Trace"
	opLU            = "LU"
	opDet           = "Det"
	opInverse       = "Inverse"
	opBlock         = "Block"
	opFromBlocks    = "FromBlocks"
	opPseudoInverse = "PseudoInverse"
	opFromGonum     = "FromGonum"
	opAllClose      = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
