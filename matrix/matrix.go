// SPDX-License-Identifier: MIT

// Package matrix - orientation-tagged storage & safe accessors.
//
// Purpose:
//   - Hold a matrix as an ordered list of immutable vectors plus an orientation tag.
//   - Keep the invariant rows/cols <-> len(data)/len(data[0]) in one constructor (build).
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(k) for k vectors; At: O(1); Row/Col: O(r) or O(c); ChangeShape: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/hyperla/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable dense matrix.
//   - data holds the storage vectors; all have equal, non-zero length.
//   - rows, cols are the LOGICAL dimensions.
//   - orient tells whether data[k] is row k (Row) or column k (Col).
//   - opts is the numeric policy inherited by derived matrices.
type Matrix struct {
	data   []vector.Vector
	rows   int
	cols   int
	orient Orientation
	opts   Options
}

// Compile-time conformance with the shared capability contracts.
var (
	_ fmt.Stringer = (*Matrix)(nil)
)

// New builds a Matrix from storage vectors and their orientation.
// Under Row each vector is a row (rows = len(vectors)); under Col each vector
// is a column (cols = len(vectors)).
//
// Errors:
//   - ErrBadOrientation when o is neither Row nor Col.
//   - ErrEmpty when vectors is empty or the vectors have zero length.
//   - ErrRagged when the vectors differ in length.
//   - ErrNaNInf when WithValidateNaNInf is set and an entry is not finite.
//
// Complexity: O(len(vectors)); vectors are immutable and shared, not copied.
// The finite-only check adds O(r*c).
func New(vectors []vector.Vector, o Orientation, opts ...Option) (*Matrix, error) {
	m, err := build(vectors, o, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// FromRows builds a Row-oriented Matrix from row slices (copied).
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	return New(slicesToVectors(rows), Row, opts...)
}

// FromCols builds a Col-oriented Matrix from column slices (copied).
func FromCols(cols [][]float64, opts ...Option) (*Matrix, error) {
	return New(slicesToVectors(cols), Col, opts...)
}

// Zeros returns an r×c zero matrix stored under orientation o.
func Zeros(r, c int, o Orientation, opts ...Option) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opNew, ErrEmpty)
	}
	n, length := r, c
	if o == Col {
		n, length = c, r
	}
	vs := make([]vector.Vector, n)
	for k := range vs {
		vs[k], _ = vector.Zeros(length) // length > 0 validated above
	}

	return New(vs, o, opts...)
}

// Identity returns the n×n identity matrix (Row orientation).
func Identity(n int, opts ...Option) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, ErrEmpty)
	}
	lines := make([][]float64, n)
	for i := range lines {
		lines[i] = make([]float64, n)
		lines[i][i] = 1
	}

	return fromLines(lines, Row, gatherOptions(defaultOptions(), opts...)), nil
}

// build is the single validating constructor used by New, Map and ZipWith.
func build(vectors []vector.Vector, o Orientation, opts Options) (*Matrix, error) {
	if !o.Valid() {
		return nil, ErrBadOrientation
	}
	if len(vectors) == 0 || vectors[0].Len() == 0 {
		return nil, ErrEmpty
	}
	length := vectors[0].Len()
	for k, v := range vectors {
		if v.Len() != length {
			return nil, fmt.Errorf("vector %d has length %d, want %d: %w", k, v.Len(), length, ErrRagged)
		}
		if opts.validateNaNInf && !v.IsFinite() {
			return nil, fmt.Errorf("vector %d: %w", k, ErrNaNInf)
		}
	}

	data := make([]vector.Vector, len(vectors))
	copy(data, vectors)
	m := &Matrix{data: data, orient: o, opts: opts}
	if o == Row {
		m.rows, m.cols = len(data), length
	} else {
		m.rows, m.cols = length, len(data)
	}

	return m, nil
}

// fromLines adopts pre-validated, rectangular storage lines (copied into vectors).
func fromLines(lines [][]float64, o Orientation, opts Options) *Matrix {
	m := &Matrix{data: slicesToVectors(lines), orient: o, opts: opts}
	if o == Row {
		m.rows, m.cols = len(lines), len(lines[0])
	} else {
		m.rows, m.cols = len(lines[0]), len(lines)
	}

	return m
}

// slicesToVectors copies each slice into an immutable vector.
func slicesToVectors(lines [][]float64) []vector.Vector {
	vs := make([]vector.Vector, len(lines))
	for k, line := range lines {
		vs[k] = vector.FromSlice(line)
	}

	return vs
}

// With returns the same matrix under an updated numeric policy.
// Entries are shared (they are immutable); only the policy changes.
func (m *Matrix) With(opts ...Option) *Matrix {
	out := *m
	out.opts = gatherOptions(m.opts, opts...)

	return &out
}

// Rows returns the logical row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the logical column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols(). Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Orientation returns the storage orientation.
func (m *Matrix) Orientation() Orientation { return m.orient }

// IsSquare reports rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the entry at LOGICAL position (row, col), whatever the orientation.
// Returns ErrOutOfRange on invalid indices.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}
	if m.orient == Row {
		return m.data[row].At(col)
	}

	return m.data[col].At(row)
}

// Vector returns storage vector k: row k under Row, column k under Col.
// Returns ErrOutOfRange when k is outside [0, len(storage)).
func (m *Matrix) Vector(k int) (vector.Vector, error) {
	if k < 0 || k >= len(m.data) {
		return vector.Vector{}, fmt.Errorf("%s(%d): %w", opVector, k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Vectors returns the storage vectors (the slice is a copy; vectors are immutable).
func (m *Matrix) Vectors() []vector.Vector {
	out := make([]vector.Vector, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns logical row i regardless of orientation.
func (m *Matrix) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= m.rows {
		return vector.Vector{}, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
	}
	if m.orient == Row {
		return m.data[i], nil
	}

	return vector.FromSlice(crossLine(m.data, i)), nil
}

// Col returns logical column j regardless of orientation.
func (m *Matrix) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= m.cols {
		return vector.Vector{}, fmt.Errorf("%s(%d): %w", opCol, j, ErrOutOfRange)
	}
	if m.orient == Col {
		return m.data[j], nil
	}

	return vector.FromSlice(crossLine(m.data, j)), nil
}

// crossLine gathers element k of every storage vector (k is pre-validated).
func crossLine(data []vector.Vector, k int) []float64 {
	out := make([]float64, len(data))
	for idx, v := range data {
		out[idx], _ = v.At(k)
	}

	return out
}

// lines returns the storage vectors as fresh slices.
func (m *Matrix) lines() [][]float64 {
	out := make([][]float64, len(m.data))
	for k, v := range m.data {
		out[k] = v.Values()
	}

	return out
}

// rowLines returns the logical rows as fresh slices.
func (m *Matrix) rowLines() [][]float64 {
	if m.orient == Row {
		return m.lines()
	}

	return transposeLines(m.lines())
}

// colLines returns the logical columns as fresh slices.
func (m *Matrix) colLines() [][]float64 {
	if m.orient == Col {
		return m.lines()
	}

	return transposeLines(m.lines())
}

// transposeLines returns out with out[i][j] = src[j][i]. src must be rectangular and non-empty.
func transposeLines(src [][]float64) [][]float64 {
	n, length := len(src), len(src[0])
	out := make([][]float64, length)
	for i := 0; i < length; i++ {
		line := make([]float64, n)
		for j := 0; j < n; j++ {
			line[j] = src[j][i]
		}
		out[i] = line
	}

	return out
}

// Equal reports whether a and b have the same logical shape and entries.
// Orientation is ignored; NaN entries are never equal.
func (m *Matrix) Equal(b *Matrix) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	ml, bl := m.rowLines(), b.rowLines()
	for i := range ml {
		for j := range ml[i] {
			if ml[i][j] != bl[i][j] {
				return false
			}
		}
	}

	return true
}

// Identical reports Equal plus the same orientation (hence identical storage).
func (m *Matrix) Identical(b *Matrix) bool {
	if m == nil || b == nil {
		return m == b
	}

	return m.orient == b.orient && m.Equal(b)
}

// AllClose reports whether |a-b| <= atol + rtol*|b| entry-wise (logical coordinates).
// Returns *DimensionError when shapes differ.
func (m *Matrix) AllClose(b *Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(opAllClose, m, b); err != nil {
		return false, err
	}
	ml, bl := m.rowLines(), b.rowLines()
	for i := range ml {
		ok, err := vector.FromSlice(ml[i]).AllClose(vector.FromSlice(bl[i]), rtol, atol)
		if err != nil {
			return false, matrixErrorf(opAllClose, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// maxAbs returns max |a_ij| over the storage (NaN entries are skipped).
func (m *Matrix) maxAbs() float64 {
	var best float64
	for _, v := range m.data {
		v.Each(func(_ int, x float64) bool {
			if a := math.Abs(x); a > best {
				best = a
			}
			return true
		})
	}

	return best
}

// String renders the matrix row by row, e.g. "[1, 2]\n[3, 4]\n".
// Intended for diagnostics; not for hot paths.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.rowLines() {
		b.WriteString(_fmtRowOpen)
		for j, x := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(fmt.Sprintf("%g", x))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
