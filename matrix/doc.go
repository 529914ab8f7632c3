// Package matrix provides a fixed-shape, column-major dense matrix value type
// and an LU-based linear-algebra engine.
//
// The matrix package provides:
//
//   - Dense, a float64 matrix with validated shape, checked (At/Set),
//     absent-indicator (Get) and panicking (MustAt/MustSet) element access,
//     plus linear-offset indexing into the column-major storage.
//   - Zero-copy Row and Col views with Dot and DotPartial inner products.
//   - Elementwise and matrix arithmetic in out-of-place and in-place forms.
//   - Collect, fallible cell-by-cell construction with an exactly-once
//     cleanup guarantee for partially filled matrices.
//   - LU decomposition with partial pivoting, determinant, triangular
//     inversions, full inverse and linear solve.
//
// Every operation is synchronous, allocation-local and deterministic: the
// same inputs always produce bitwise-identical outputs. Errors are
// package-level sentinels matched with errors.Is; no operation panics on
// user input except the documented Must* accessors.
package matrix
