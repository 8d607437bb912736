// Package hyperla is a small dense linear-algebra toolkit built around two
// immutable value types.
//
// Packages:
//
//	algebra/   shared capability contracts (FP, LinearAlgebra), norm selectors, permutations
//	vector/    fixed-length float64 vectors: add, sub, dot, Hadamard, map/zip/reduce
//	matrix/    orientation-tagged matrices: shape conversion, transpose, products,
//	           norms, LU, determinant, inverse, block split, pseudo-inverse, statistics
//	examples/  runnable programs (orientation walkthrough, product timing, least squares)
//
// A Matrix stores an ordered list of vectors plus a Row/Col tag that says
// whether those vectors are its rows or its columns:
//
//	Row(u, w) = | u |      Col(u, w) = | u w |
//	            | w |
//
// ChangeShape keeps the logical matrix and flips the storage; Transpose keeps
// the storage tag and swaps rows with columns. Every operation validates
// shapes up front and reports failures as errors that match the package
// sentinels with errors.Is.
//
//	go get github.com/katalvlaran/hyperla
package hyperla
