// SPDX-License-Identifier: MIT

// Package vector provides an immutable, fixed-length vector of float64 values.
//
// Every operation returns a fresh Vector; the backing storage of an existing
// Vector is never written after construction, so values may be shared freely
// between goroutines.
//
// Arithmetic (Add, Sub, Hadamard, Scale, Dot) runs on the block kernels of
// github.com/cwbudde/algo-vecmath. Length mismatches are reported as a
// *LengthError that matches ErrLengthMismatch under errors.Is; nothing in the
// public surface panics on user input.
//
// Vector also implements the functional capability algebra.FP[Vector, float64]:
//
//	u := vector.New(1, 2)
//	w := vector.New(3, 4)
//	s, _ := u.ZipWith(func(x, y float64) float64 { return x + y }, w) // [4, 6]
//	d, _ := u.Dot(w)                                                  // 11
package vector
