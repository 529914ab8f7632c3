// SPDX-License-Identifier: MIT
// Package: matrix
// File: new.go
//
// Purpose:
//   - Constructors beyond the zeroed NewDense: building from existing data in
//     either storage order, plus the common Zeros / Ones / Identity shapes.
//
// Conventions:
//   - FromColumnMajor takes data in storage order and requires an exact count.
//   - FromRowMajor takes data in display order (row by row) for readable
//     literals in code and tests; it transposes into column-major storage.

package matrix

// FromColumnMajor builds an r×c matrix from data given in column-major
// (storage) order.
//
// Inputs:
//   - rows, cols: target shape, both must be > 0.
//   - data: exactly rows*cols elements; copied, never aliased.
//
// Returns:
//   - *Dense on success.
//
// Errors:
//   - ErrBadShape: rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch: len(data) != rows*cols.
//
// Complexity: O(rows*cols).
func FromColumnMajor(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opFromColMajor, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromColMajor, ErrDimensionMismatch)
	}
	out := newDense(rows, cols)
	copy(out.data, data)

	return out, nil
}

// FromRowMajor builds an r×c matrix from data given in row-major (display)
// order. Useful for writing literals the way they look on paper; the values
// are rearranged into column-major storage.
//
// Errors:
//   - ErrBadShape: rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch: len(data) != rows*cols.
//
// Complexity: O(rows*cols).
func FromRowMajor(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opFromRowMajor, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromRowMajor, ErrDimensionMismatch)
	}

	// predeclare loop variables
	var i, j int
	out := newDense(rows, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = data[i*cols+j]
		}
	}

	return out, nil
}

// MustFromRowMajor is FromRowMajor that panics on error.
// Intended for fixtures and package-level literals where a bad shape is a
// programmer error.
func MustFromRowMajor(rows, cols int, data []float64) *Dense {
	m, err := FromRowMajor(rows, cols, data)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros returns an r×c matrix of all zeros.
// Errors: ErrBadShape. Complexity: O(rows*cols).
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Ones returns an r×c matrix of all ones.
// Errors: ErrBadShape. Complexity: O(rows*cols).
func Ones(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = 1
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape when n <= 0. Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for d := 0; d < n; d++ {
		m.data[d*n+d] = 1
	}

	return m, nil
}

// FromDiagonal returns the square matrix with the given values on the main
// diagonal and zeros elsewhere.
// Errors: ErrBadShape when len(values) == 0. Complexity: O(n²).
func FromDiagonal(values []float64) (*Dense, error) {
	n := len(values)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for d := 0; d < n; d++ {
		m.data[d*n+d] = values[d]
	}

	return m, nil
}

// identity allocates the n×n identity without validation; internal use only,
// callers guarantee n > 0.
func identity(n int) *Dense {
	m := newDense(n, n)
	for d := 0; d < n; d++ {
		m.data[d*n+d] = 1
	}

	return m
}
