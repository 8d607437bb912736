// SPDX-License-Identifier: MIT

// Package matrix - matrix norms.
//
// Norm kinds:
//   - Frobenius: √(Σ a_ij²), summed over the storage in native order.
//   - PQ(p, q):  (Σ_j (Σ_i |a_ij|^p)^(q/p))^(1/q), read in logical (i, j) order.
//   - One:       max_j Σ_i |a_ij|, reduced over the Col view.
//   - Infinity:  max_i Σ_j |a_ij|, reduced over the Row view.
//
// One and Infinity use absolute values (the standard operator norms). A signed
// variant (max of raw column/row sums) is not offered; see norm tests.
// NaN and ±Inf entries follow IEEE-754 arithmetic.
package matrix

import (
	"math"

	"github.com/katalvlaran/hyperla/algebra"
	"github.com/katalvlaran/hyperla/vector"
)

// Norm computes the norm selected by n.
// Returns algebra.ErrInvalidNorm (wrapped) for unknown kinds or PQ exponents < 1.
func (m *Matrix) Norm(n algebra.Norm) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if err := n.Validate(); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	switch n.Kind {
	case algebra.KindFrobenius:
		return m.frobenius(), nil
	case algebra.KindPQ:
		return m.pq(n.P, n.Q), nil
	case algebra.KindOne:
		return maxAbsLineSum(m.aligned(Col).data), nil
	default: // algebra.KindInfinity; Validate rejected everything else
		return maxAbsLineSum(m.aligned(Row).data), nil
	}
}

// frobenius sums squares over the storage; the result is orientation-independent.
func (m *Matrix) frobenius() float64 {
	var s float64
	for _, v := range m.data {
		s = v.Reduce(func(acc, x float64) float64 { return acc + x*x }, s)
	}

	return math.Sqrt(s)
}

// pq evaluates the entrywise L_pq norm column by column.
func (m *Matrix) pq(p, q float64) float64 {
	var s float64
	for _, col := range m.colLines() {
		var inner float64
		for _, x := range col {
			inner += math.Pow(math.Abs(x), p)
		}
		s += math.Pow(inner, q/p)
	}

	return math.Pow(s, 1/q)
}

// maxAbsLineSum returns max_k Σ |v_k[i]| over the given storage vectors.
func maxAbsLineSum(lines []vector.Vector) float64 {
	best := math.Inf(-1)
	for _, v := range lines {
		abs, _ := v.Map(math.Abs)
		s := abs.Sum()
		if math.IsNaN(s) {
			return s
		}
		if s > best {
			best = s
		}
	}

	return best
}
