// SPDX-License-Identifier: MIT

// Package matrix - shape conversion and transpose.
//
// ChangeShape changes STORAGE (the orientation tag flips, the logical matrix
// is unchanged); Transpose changes MEANING (rows and columns swap, the
// orientation tag is kept). Transpose is ChangeShape with the converted
// storage reinterpreted under the original tag.
package matrix

// ChangeShape returns the same logical matrix stored under the opposite
// orientation: out.data[i][j] == m.data[j][i]. The receiver is not mutated.
// ChangeShape(ChangeShape(m)) is Identical to m.
// Complexity: O(r*c) time and space.
func (m *Matrix) ChangeShape() *Matrix {
	return &Matrix{
		data:   slicesToVectors(transposeLines(m.lines())),
		rows:   m.rows,
		cols:   m.cols,
		orient: m.orient.Opposite(),
		opts:   m.opts,
	}
}

// Transpose returns mᵀ with the SAME orientation tag as m.
// T(T(m)) is Identical to m (entries, shape and orientation).
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	out := m.ChangeShape()
	// The converted storage read under the original tag is the transpose.
	out.rows, out.cols = m.cols, m.rows
	out.orient = m.orient

	return out
}

// T is shorthand for Transpose.
func (m *Matrix) T() *Matrix { return m.Transpose() }

// As returns m stored under orientation o: m itself when it already is,
// otherwise ChangeShape(). Invalid orientations return ErrBadOrientation.
func (m *Matrix) As(o Orientation) (*Matrix, error) {
	if !o.Valid() {
		return nil, ErrBadOrientation
	}
	if m.orient == o {
		return m, nil
	}

	return m.ChangeShape(), nil
}

// aligned returns m stored under o; o must be valid.
func (m *Matrix) aligned(o Orientation) *Matrix {
	if m.orient == o {
		return m
	}

	return m.ChangeShape()
}
