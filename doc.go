// Package stackalgebra is a small, deterministic linear-algebra toolkit
// built around one value type: a dense, column-major matrix of float64.
//
// 🚀 What is stack-algebra?
//
//	A synchronous, dependency-light library that brings together:
//		• Column-major dense storage with checked and fail-loud indexing
//		• Zero-copy row/column views with strided dot products
//		• Elementwise scalar/matrix operators, fresh-result and in-place forms
//		• Fallible cell-by-cell construction with a hard cleanup guarantee
//		• LU decomposition with partial pivoting, triangular inversion,
//		  determinant and full inverse
//
// ✨ Why choose stack-algebra?
//
//   - Predictable – fixed loop orders, documented tie-breaks, no hidden state
//   - Honest errors – sentinel errors matched via errors.Is; no panics on
//     user input (the documented Must* accessors excepted)
//   - Pure Go – no cgo, no I/O, no goroutines; every call is a deterministic
//     function of its inputs
//
// Everything lives under a single subpackage:
//
//	matrix/ — the Dense type, views, operators and the LU engine
//
// Quick sketch:
//
//	A := matrix.MustFromRowMajor(3, 3, []float64{
//		6, 2, 3,
//		1, 1, 1,
//		0, 4, 9,
//	})
//	L, U, P, _ := matrix.LU(A)  // P·A = L·U
//	d, _ := matrix.Det(A)       // 24
//	inv, _ := matrix.Inverse(A) // A⁻¹ = U⁻¹·L⁻¹·P
//
// Dive into the matrix package documentation for the full surface.
//
//	go get github.com/yongkyuns/stack-algebra/matrix
package stackalgebra
