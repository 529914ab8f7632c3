// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the single typed error that must carry data (UnderfillError).
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions; panics
// are reserved for the documented Must* accessors and programmer errors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the outer
// boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column, linear offset or
	// view position) is outside valid bounds. Checked indexers (At/Set and
	// their offset forms) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows,
	// FromColumnMajor with a wrong element count, or Dot over views of
	// different logical length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Trace, LU, Det, Inverse, triangular inversions, Solve).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when triangular inversion meets an exact-zero
	// diagonal entry, and therefore by Inverse when no inverse exists.
	// Singularity testing is exact equality against zero, never a tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotUnitTriangular signals that lower-triangular inversion was given a
	// matrix whose diagonal is not identically 1.
	ErrNotUnitTriangular = errors.New("matrix: not unit lower triangular")

	// ErrShortSource is the sentinel behind UnderfillError: the source
	// sequence ran out before rows*cols elements were produced.
	ErrShortSource = errors.New("matrix: source exhausted before fill completed")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilSource indicates that a nil Source was passed to Collect.
	ErrNilSource = errors.New("matrix: nil source")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opTrace        = "Trace"
	opCross        = "Cross"
	opLU           = "LU"
	opDet          = "Det"
	opInverse      = "Inverse"
	opInvertUpper  = "InvertUpperTriangular"
	opInvertLower  = "InvertLowerTriangular"
	opSolve        = "Solve"
	opCollect      = "Collect"
	opFromColMajor = "FromColumnMajor"
	opFromRowMajor = "FromRowMajor"
	opAtOffset     = "AtOffset"
	opSetOffset    = "SetOffset"
	opRowView      = "Dense.Row"
	opColView      = "Dense.Col"
	opViewAt       = "view.At"
	opViewMustAt   = "view.MustAt"
	opViewSet      = "view.Set"
	opRowDot       = "Row.Dot"
	opRowDotPart   = "Row.DotPartial"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// offsetErrorf wraps an underlying error with flat-offset method context.
func offsetErrorf(method string, k int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, k, err)
}

// UnderfillError reports that Collect consumed fewer elements than the target
// shape requires. Every cell written before the shortfall has already been
// released exactly once (in write order) by the time this error is returned.
//
// It unwraps to ErrShortSource, so errors.Is(err, ErrShortSource) matches and
// errors.As(err, &target) recovers the observed count.
type UnderfillError struct {
	Consumed int // elements actually obtained from the source
	Expected int // rows*cols elements the shape requires
}

// Error implements the error interface.
func (e *UnderfillError) Error() string {
	return fmt.Sprintf("matrix: Collect: source exhausted after %d of %d elements", e.Consumed, e.Expected)
}

// Unwrap ties the typed error to the ErrShortSource sentinel.
func (e *UnderfillError) Unwrap() error {
	return ErrShortSource
}
