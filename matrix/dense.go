// SPDX-License-Identifier: MIT
// Package: matrix
// File: dense.go
//
// Purpose:
//   - Define the Dense value type: a fixed-shape, column-major float64 matrix.
//   - Provide checked, absent-indicator and panicking element access.
//   - Provide structural operations: swaps, clone, equality, ordering, iteration.
//
// Storage layout:
//   - Flat []float64 of length r*c; the offset of (row, col) is col*r + row,
//     so each column is contiguous and each row is a strided window (view.go).

package matrix

import (
	"cmp"
	"fmt"
	"iter"
)

// Dense is a column-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in column-major order.
// Shapes are fixed at construction; every operation either mutates its own
// receiver or returns a new value, so no shared mutable ownership crosses
// operation boundaries.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c, column-major
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDense allocates without validation; for internal use after checks.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// IsSquare reports whether the matrix has as many rows as columns.
// Complexity: O(1).
func (m *Dense) IsSquare() bool {
	return m.r == m.c
}

// offsetOf computes the flat column-major index for (row, col) or returns
// ErrOutOfRange. Complexity: O(1).
func (m *Dense) offsetOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return col*m.r + row, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via offsetOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.offsetOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via offsetOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.offsetOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Get retrieves the element at (row, col) in absent-indicator form:
// the second result is false when the index is out of range.
// Complexity: O(1).
func (m *Dense) Get(row, col int) (float64, bool) {
	idx, err := m.offsetOf(row, col)
	if err != nil {
		return 0, false
	}

	return m.data[idx], true
}

// AtOffset retrieves the element at the flat column-major offset k.
// Linear-offset indexing is a distinct operation from (row, col) indexing;
// there is no polymorphic index argument. Returns ErrOutOfRange when
// k is outside [0, Rows*Cols). Complexity: O(1).
func (m *Dense) AtOffset(k int) (float64, error) {
	if k < 0 || k >= len(m.data) {
		return 0, offsetErrorf(opAtOffset, k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// SetOffset assigns v at the flat column-major offset k.
// Returns ErrOutOfRange when k is outside [0, Rows*Cols). Complexity: O(1).
func (m *Dense) SetOffset(k int, v float64) error {
	if k < 0 || k >= len(m.data) {
		return offsetErrorf(opSetOffset, k, ErrOutOfRange)
	}
	m.data[k] = v

	return nil
}

// GetOffset retrieves the element at flat offset k in absent-indicator form.
// Complexity: O(1).
func (m *Dense) GetOffset(k int) (float64, bool) {
	if k < 0 || k >= len(m.data) {
		return 0, false
	}

	return m.data[k], true
}

// MustAt retrieves the element at (row, col), panicking when out of range.
// This is the fail-loud access path; prefer At/Get for user input.
// Complexity: O(1).
func (m *Dense) MustAt(row, col int) float64 {
	idx, err := m.offsetOf(row, col)
	if err != nil {
		panic(denseErrorf("MustAt", row, col, err))
	}

	return m.data[idx]
}

// MustSet assigns v at (row, col), panicking when out of range.
// Complexity: O(1).
func (m *Dense) MustSet(row, col int, v float64) {
	idx, err := m.offsetOf(row, col)
	if err != nil {
		panic(denseErrorf("MustSet", row, col, err))
	}
	m.data[idx] = v
}

// SwapRows exchanges all elements of rows r1 and r2 in place.
// A silent no-op when either index is out of range: an invalid swap has
// nothing to exchange, so the matrix is left untouched.
// Complexity: O(c).
func (m *Dense) SwapRows(r1, r2 int) {
	if r1 < 0 || r1 >= m.r || r2 < 0 || r2 >= m.r {
		return
	}
	for j := 0; j < m.c; j++ {
		base := j * m.r
		m.data[base+r1], m.data[base+r2] = m.data[base+r2], m.data[base+r1]
	}
}

// SwapColumns exchanges all elements of columns c1 and c2 in place.
// A silent no-op when either index is out of range, same policy as SwapRows.
// Complexity: O(r).
func (m *Dense) SwapColumns(c1, c2 int) {
	if c1 < 0 || c1 >= m.c || c2 < 0 || c2 >= m.c {
		return
	}
	b1, b2 := c1*m.r, c2*m.r
	for i := 0; i < m.r; i++ {
		m.data[b1+i], m.data[b2+i] = m.data[b2+i], m.data[b1+i]
	}
}

// Clone returns a deep copy of the Dense matrix.
// The returned value is fully independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// ColumnMajor returns a copy of the backing storage in column-major order.
// Complexity: O(r*c).
func (m *Dense) ColumnMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Iter returns a finite, restartable, lazy sequence over (offset, element)
// pairs in column-major storage order. Each range over the result restarts
// the traversal from offset zero.
// Complexity: O(r*c) for a full traversal; O(1) to construct.
func (m *Dense) Iter() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for k, v := range m.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Equal reports whether m and o have identical shape and identical elements
// in storage order. Exact float64 comparison; use the test helpers for
// tolerance-based comparison. Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Compare orders two matrices: first by rows, then by columns, then
// lexicographically by elements in column-major storage order. The result is
// -1, 0 or +1, suitable for sorting slices of matrices deterministically.
// Complexity: O(r*c) worst case.
func (m *Dense) Compare(o *Dense) int {
	if v := cmp.Compare(m.r, o.r); v != 0 {
		return v
	}
	if v := cmp.Compare(m.c, o.c); v != 0 {
		return v
	}
	for k := range m.data {
		if v := cmp.Compare(m.data[k], o.data[k]); v != 0 {
			return v
		}
	}

	return 0
}

// String implements fmt.Stringer for easy debugging.
// Elements are printed row by row (display order), one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[j*m.r+i])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
