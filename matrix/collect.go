// SPDX-License-Identifier: MIT
// Package: matrix
// File: collect.go
//
// Purpose:
//   - Build a matrix cell by cell from a fallible element source, with a hard
//     cleanup guarantee: if the source runs short (or panics) after some cells
//     were written, every written cell is released exactly once, in write
//     order, before the failure escapes.
//
// Behavior highlights:
//   - Cells fill in column-major (storage) order, matching Iter.
//   - A source yielding MORE than rows*cols elements is fine: exactly
//     rows*cols values are consumed, the remainder is never requested.
//   - The release hook is observable via WithReleaseFunc; by default cleanup
//     is a no-op (float64 cells own no resources).

package matrix

// Source produces matrix elements one at a time. Next returns the next
// element and true, or an undefined value and false once exhausted. Sources
// are single-use from Collect's point of view: Collect never rewinds.
type Source interface {
	Next() (float64, bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (float64, bool)

// Next calls the underlying function.
func (f SourceFunc) Next() (float64, bool) {
	return f()
}

// SliceSource yields the elements of a slice in order, then reports
// exhaustion. The zero value is an empty source.
type SliceSource struct {
	values []float64
	pos    int
}

// NewSliceSource wraps values (aliased, not copied) as a Source.
func NewSliceSource(values []float64) *SliceSource {
	return &SliceSource{values: values}
}

// Next yields the next slice element, or false when the slice is spent.
func (s *SliceSource) Next() (float64, bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++

	return v, true
}

// Collect builds an r×c matrix by drawing exactly rows*cols elements from src
// in column-major order.
//
// Implementation:
//   - Stage 1 (Validate): shape > 0, src non-nil.
//   - Stage 2 (Fill): draw and write one cell at a time, tracking the count of
//     cells successfully written.
//   - Stage 3 (Cleanup on failure): a deferred hook fires whenever the
//     function is not returning a matrix (underfill return or a panic out of
//     src.Next) and releases cells [0, written) in write order, exactly once
//     each, zeroing them as it goes.
//
// Inputs:
//   - rows, cols: target shape.
//   - src: element source; consumed up to rows*cols elements.
//   - opts: WithReleaseFunc to observe cleanup.
//
// Returns:
//   - fully initialized *Dense on success.
//
// Errors:
//   - ErrBadShape: rows <= 0 or cols <= 0 (source untouched).
//   - ErrNilSource: src is nil.
//   - *UnderfillError (unwraps to ErrShortSource): src exhausted early; the
//     error carries the number of elements consumed.
//
// Determinism: single pass, no retries; the source is never re-queried after
// it reports exhaustion.
// Complexity: O(rows*cols).
func Collect(rows, cols int, src Source, opts ...CollectOption) (out *Dense, err error) {
	if err = ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opCollect, err)
	}
	if src == nil {
		return nil, matrixErrorf(opCollect, ErrNilSource)
	}
	cfg := gatherCollectOptions(opts...)

	m := newDense(rows, cols)
	written := 0

	// Cleanup contract: when this function does not hand the matrix to the
	// caller (out == nil on exit), every cell written so far is released
	// exactly once, in write order. This covers both the underfill return
	// below and a panic escaping src.Next mid-fill.
	defer func() {
		if out != nil {
			return
		}
		for k := 0; k < written; k++ {
			cfg.release(k, m.data[k])
			m.data[k] = 0
		}
	}()

	total := rows * cols
	for written < total {
		v, ok := src.Next()
		if !ok {
			return nil, matrixErrorf(opCollect, &UnderfillError{Consumed: written, Expected: total})
		}
		m.data[written] = v
		written++
	}

	return m, nil
}
