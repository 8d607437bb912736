// SPDX-License-Identifier: MIT

// Package matrix provides an immutable dense matrix built from vectors tagged
// with a storage orientation.
//
// A Matrix keeps an ordered list of vector.Vector values. Under Row
// orientation each vector is a row; under Col orientation each vector is a
// column. The orientation is a storage detail: At(i, j), Rows(), Cols() and
// every arithmetic result are expressed in LOGICAL coordinates, so a matrix and
// its ChangeShape() counterpart are interchangeable everywhere except in
// Vector(k), which indexes storage directly.
//
// The package provides:
//
//   - Construction: New, FromRows, FromCols, Zeros, Identity, FromGonum.
//   - Shape conversion (ChangeShape) and transpose (Transpose / T).
//   - Arithmetic: Add, Sub, Mul (any orientation pairing), MulVec, Scale, Hadamard.
//   - Functional combinators over storage vectors: Map, ZipWith, Reduce.
//   - Norms: Frobenius, L_pq, 1-norm and ∞-norm.
//   - Factorizations: LU with complete pivoting, Det, Inverse, Block,
//     and a Moore–Penrose PseudoInverse backed by gonum's SVD.
//   - Statistics over observations (rows): CenterColumns, CenterRows,
//     NormalizeRowsL1/L2, Covariance, Correlation.
//   - Sanitizers: ReplaceInfNaN, Clip.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped
// with the operation name; match them with errors.Is. Shape errors on binary
// operations are *DimensionError values carrying both operand shapes.
//
// Numeric policy (epsilon, NaN/Inf validation, Mul worker count) is set with
// functional options at construction and inherited by every derived matrix.
package matrix
