// SPDX-License-Identifier: MIT
// Package: matrix
// File: view.go
//
// Purpose:
//   - Zero-copy Row and Col views over a Dense matrix.
//   - A view is a (data, start, stride, length) window into the backing slice:
//     Row i of an r×c matrix is (start=i, stride=r, length=c), Col j is
//     (start=j*r, stride=1, length=r). No element is copied until Slice.
//
// Behavior highlights:
//   - Views alias the parent storage: writes through Set are visible in the
//     parent and vice versa. A view does not pin the parent's lifetime beyond
//     normal garbage-collection reachability.
//   - Dot and DotPartial accept a Col so that Mul's inner product reads a row
//     of the left operand against a column of the right one, each in its
//     natural stride.
//
// Determinism:
//   - All traversals run in increasing logical index order.

package matrix

// view is the shared strided-window core behind Row and Col.
type view struct {
	data   []float64 // parent backing slice, aliased
	start  int       // flat offset of logical element 0
	stride int       // flat distance between consecutive logical elements
	length int       // number of logical elements
}

// Len returns the number of elements in the window. Complexity: O(1).
func (v view) Len() int {
	return v.length
}

// at reads logical element k; caller must have bounds-checked k.
func (v view) at(k int) float64 {
	return v.data[v.start+k*v.stride]
}

// At retrieves the element at logical position k.
// Errors: ErrOutOfRange when k is outside [0, Len). Complexity: O(1).
func (v view) At(k int) (float64, error) {
	if k < 0 || k >= v.length {
		return 0, matrixErrorf(opViewAt, ErrOutOfRange)
	}

	return v.at(k), nil
}

// MustAt retrieves the element at logical position k, panicking out of range.
// Complexity: O(1).
func (v view) MustAt(k int) float64 {
	if k < 0 || k >= v.length {
		panic(matrixErrorf(opViewMustAt, ErrOutOfRange))
	}

	return v.at(k)
}

// Set writes value x at logical position k, through to the parent matrix.
// Errors: ErrOutOfRange when k is outside [0, Len). Complexity: O(1).
func (v view) Set(k int, x float64) error {
	if k < 0 || k >= v.length {
		return matrixErrorf(opViewSet, ErrOutOfRange)
	}
	v.data[v.start+k*v.stride] = x

	return nil
}

// Slice materializes the window into a fresh []float64 copy.
// The result is independent of the parent. Complexity: O(Len).
func (v view) Slice() []float64 {
	out := make([]float64, v.length)
	for k := 0; k < v.length; k++ {
		out[k] = v.at(k)
	}

	return out
}

// EqualSlice reports whether the window equals s element-by-element.
// Exact float64 comparison. Complexity: O(Len).
func (v view) EqualSlice(s []float64) bool {
	if len(s) != v.length {
		return false
	}
	for k := 0; k < v.length; k++ {
		if v.at(k) != s[k] {
			return false
		}
	}

	return true
}

// dotRange sums v[k]*o[k] over logical positions [from, to); both windows
// must already have equal length and the range must be clamped by the caller.
func dotRange(v, o view, from, to int) float64 {
	var sum float64
	for k := from; k < to; k++ {
		sum += v.at(k) * o.at(k)
	}

	return sum
}

// Row is a zero-copy view of one matrix row (stride = parent rows).
type Row struct {
	view
}

// Col is a zero-copy view of one matrix column (stride = 1, contiguous).
type Col struct {
	view
}

// Row returns a zero-copy view of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows). Complexity: O(1).
func (m *Dense) Row(i int) (Row, error) {
	if i < 0 || i >= m.r {
		return Row{}, matrixErrorf(opRowView, ErrOutOfRange)
	}

	return Row{view{data: m.data, start: i, stride: m.r, length: m.c}}, nil
}

// Col returns a zero-copy view of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols). Complexity: O(1).
func (m *Dense) Col(j int) (Col, error) {
	if j < 0 || j >= m.c {
		return Col{}, matrixErrorf(opColView, ErrOutOfRange)
	}

	return Col{view{data: m.data, start: j * m.r, stride: 1, length: m.r}}, nil
}

// MustRow is Row that panics on a bad index; for fixtures and hot paths
// where the index is known valid.
func (m *Dense) MustRow(i int) Row {
	r, err := m.Row(i)
	if err != nil {
		panic(err)
	}

	return r
}

// MustCol is Col that panics on a bad index.
func (m *Dense) MustCol(j int) Col {
	c, err := m.Col(j)
	if err != nil {
		panic(err)
	}

	return c
}

// Dot computes the inner product of the row with a column view.
//
// Inputs:
//   - c: column view of equal logical length.
//
// Returns:
//   - Σ row[k]·col[k] over the full length.
//
// Errors:
//   - ErrDimensionMismatch: lengths differ.
//
// Determinism: accumulation runs in increasing k; no reordering.
// Complexity: O(Len).
func (r Row) Dot(c Col) (float64, error) {
	if r.length != c.length {
		return 0, matrixErrorf(opRowDot, ErrDimensionMismatch)
	}

	return dotRange(r.view, c.view, 0, r.length), nil
}

// DotPartial computes the inner product restricted to logical positions
// [from, to). The range is clamped into [0, Len]; an empty or inverted range
// yields the zero sum rather than an error.
//
// Errors:
//   - ErrDimensionMismatch: lengths differ.
//
// Complexity: O(to-from) after clamping.
func (r Row) DotPartial(c Col, from, to int) (float64, error) {
	if r.length != c.length {
		return 0, matrixErrorf(opRowDotPart, ErrDimensionMismatch)
	}
	if from < 0 {
		from = 0
	}
	if to > r.length {
		to = r.length
	}
	if from >= to {
		return 0, nil
	}

	return dotRange(r.view, c.view, from, to), nil
}
