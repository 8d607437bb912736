// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"math"
)

// NormKind selects the matrix norm computed by LinearAlgebra.Norm.
type NormKind int

const (
	// KindFrobenius is √(Σ a_ij²).
	KindFrobenius NormKind = iota
	// KindPQ is the entrywise L_pq norm (Σ_j (Σ_i |a_ij|^p)^(q/p))^(1/q).
	KindPQ
	// KindOne is the maximum absolute column sum.
	KindOne
	// KindInfinity is the maximum absolute row sum.
	KindInfinity
)

// String returns a short, stable name for the kind.
func (k NormKind) String() string {
	switch k {
	case KindFrobenius:
		return "Frobenius"
	case KindPQ:
		return "PQ"
	case KindOne:
		return "One"
	case KindInfinity:
		return "Infinity"
	default:
		return fmt.Sprintf("NormKind(%d)", int(k))
	}
}

// Norm describes which norm to compute. P and Q are read only for KindPQ.
// Build values with Frobenius, PQ, One or Infinity rather than by hand.
type Norm struct {
	Kind NormKind
	P, Q float64
}

// Frobenius returns the Frobenius norm descriptor.
func Frobenius() Norm { return Norm{Kind: KindFrobenius} }

// PQ returns the L_pq norm descriptor with inner exponent p and outer
// exponent q. PQ(2, 2) coincides with Frobenius.
func PQ(p, q float64) Norm { return Norm{Kind: KindPQ, P: p, Q: q} }

// One returns the 1-norm descriptor (maximum absolute column sum).
func One() Norm { return Norm{Kind: KindOne} }

// Infinity returns the ∞-norm descriptor (maximum absolute row sum).
func Infinity() Norm { return Norm{Kind: KindInfinity} }

// Validate reports ErrInvalidNorm for unknown kinds and for PQ exponents that
// are non-finite or below 1.
func (n Norm) Validate() error {
	switch n.Kind {
	case KindFrobenius, KindOne, KindInfinity:
		return nil
	case KindPQ:
		if !validExponent(n.P) || !validExponent(n.Q) {
			return fmt.Errorf("PQ(%g, %g): %w", n.P, n.Q, ErrInvalidNorm)
		}

		return nil
	default:
		return fmt.Errorf("%s: %w", n.Kind, ErrInvalidNorm)
	}
}

// String renders the descriptor, e.g. "Frobenius" or "PQ(2, 1)".
func (n Norm) String() string {
	if n.Kind == KindPQ {
		return fmt.Sprintf("PQ(%g, %g)", n.P, n.Q)
	}

	return n.Kind.String()
}

func validExponent(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 1
}
