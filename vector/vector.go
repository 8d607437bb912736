// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"
)

// Formatting literals shared with matrix dumps.
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an immutable ordered sequence of float64 values.
// The zero value is the empty vector.
type Vector struct {
	data []float64 // never mutated after construction
}

// New returns a Vector holding a copy of values.
func New(values ...float64) Vector {
	return FromSlice(values)
}

// FromSlice returns a Vector holding a copy of s. Later writes to s do not
// affect the Vector.
func FromSlice(s []float64) Vector {
	data := make([]float64, len(s))
	copy(data, s)

	return Vector{data: data}
}

// Zeros returns a zero-filled Vector of length n.
func Zeros(n int) (Vector, error) {
	if n < 0 {
		return Vector{}, ErrInvalidLength
	}

	return Vector{data: make([]float64, n)}, nil
}

// Fill returns a Vector of length n with every element set to x.
func Fill(n int, x float64) (Vector, error) {
	v, err := Zeros(n)
	if err != nil {
		return Vector{}, err
	}
	for i := range v.data {
		v.data[i] = x
	}

	return v, nil
}

// wrap adopts buf as storage without copying. Callers must not retain buf.
func wrap(buf []float64) Vector { return Vector{data: buf} }

// Len returns the number of elements.
func (v Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", opAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the elements.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Each calls f for every element in index order and stops when f returns false.
func (v Vector) Each(f func(i int, x float64) bool) {
	for i, x := range v.data {
		if !f(i, x) {
			return
		}
	}
}

// IsFinite reports whether no element is NaN or ±Inf.
func (v Vector) IsFinite() bool {
	for _, x := range v.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Equal reports exact element-wise equality (lengths must match).
// NaN is never equal to anything, following IEEE-754.
func (v Vector) Equal(w Vector) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether |v[i]-w[i]| <= atol + rtol*|w[i]| for every i.
// Negative tolerances are treated as their absolute value. NaN is never close;
// infinities are close only to an infinity of the same sign.
func (v Vector) AllClose(w Vector, rtol, atol float64) (bool, error) {
	if err := checkSameLength(opAllClose, v, w); err != nil {
		return false, err
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range v.data {
		if !isClose(v.data[i], w.data[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// isClose is the scalar predicate behind AllClose.
func isClose(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// String renders the vector as "[1, 2, 3]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
