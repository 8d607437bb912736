// SPDX-License-Identifier: MIT

// Package algebra declares the capability contracts shared by the vector and
// matrix packages.
//
// The package provides:
//
//   - FP, the functional combinator capability (Map, ZipWith, Reduce) that
//     both Vector (over float64 elements) and Matrix (over its storage
//     vectors) implement.
//   - LinearAlgebra, the transpose/norm/factorization capability of Matrix.
//   - Norm, a small descriptor selecting Frobenius, L_pq, 1- or ∞-norm.
//   - Swap/Perms and LUDecomposition, the result shapes of a pivoted LU.
//
// algebra is a leaf: it imports nothing from this module, so concrete types
// can assert conformance with compile-time checks such as
//
//	var _ algebra.LinearAlgebra[*Matrix] = (*Matrix)(nil)
package algebra
