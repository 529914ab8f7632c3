// SPDX-License-Identifier: MIT
// Package: matrix
// File: ops.go
//
// Purpose:
//   - Elementwise and matrix arithmetic over Dense values.
//   - Out-of-place functions allocate and return a fresh result; InPlace
//     methods mutate only their receiver. Operands are never modified by
//     out-of-place forms.
//
// Conventions:
//   - Non-commutative scalar forms come in both operand orders:
//     SubScalar(m, s) = m - s, ScalarSub(s, m) = s - m, and likewise for
//     Div and Mod.
//   - Mod is float remainder via math.Mod (sign follows the dividend).
//
// Determinism:
//   - Every kernel traverses storage in increasing column-major offset; Mul
//     fills the result column by column. No goroutines, no reordering.

package matrix

import "math"

// applyScalar maps f over every element of m into a fresh matrix.
func applyScalar(m *Dense, f func(float64) float64) *Dense {
	out := newDense(m.r, m.c)
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// applyScalarInPlace maps f over every element of m, mutating m.
func applyScalarInPlace(m *Dense, f func(float64) float64) {
	for k, v := range m.data {
		m.data[k] = f(v)
	}
}

// AddScalar returns m + s applied elementwise. Complexity: O(r*c).
func AddScalar(m *Dense, s float64) *Dense {
	return applyScalar(m, func(v float64) float64 { return v + s })
}

// SubScalar returns m - s applied elementwise. Complexity: O(r*c).
func SubScalar(m *Dense, s float64) *Dense {
	return applyScalar(m, func(v float64) float64 { return v - s })
}

// ScalarSub returns s - m applied elementwise. Complexity: O(r*c).
func ScalarSub(s float64, m *Dense) *Dense {
	return applyScalar(m, func(v float64) float64 { return s - v })
}

// MulScalar returns m * s applied elementwise. Complexity: O(r*c).
func MulScalar(m *Dense, s float64) *Dense {
	return applyScalar(m, func(v float64) float64 { return v * s })
}

// DivScalar returns m / s applied elementwise. Division by zero follows
// float64 semantics (±Inf, NaN). Complexity: O(r*c).
func DivScalar(m *Dense, s float64) *Dense {
	return applyScalar(m, func(v float64) float64 { return v / s })
}

// ScalarDiv returns s / m applied elementwise. Complexity: O(r*c).
func ScalarDiv(s float64, m *Dense) *Dense {
	return applyScalar(m, func(v float64) float64 { return s / v })
}

// ModScalar returns math.Mod(m, s) applied elementwise. Complexity: O(r*c).
func ModScalar(m *Dense, s float64) *Dense {
	return applyScalar(m, func(v float64) float64 { return math.Mod(v, s) })
}

// ScalarMod returns math.Mod(s, m) applied elementwise. Complexity: O(r*c).
func ScalarMod(s float64, m *Dense) *Dense {
	return applyScalar(m, func(v float64) float64 { return math.Mod(s, v) })
}

// AddScalarInPlace adds s to every element of m. Complexity: O(r*c).
func (m *Dense) AddScalarInPlace(s float64) {
	applyScalarInPlace(m, func(v float64) float64 { return v + s })
}

// SubScalarInPlace subtracts s from every element of m. Complexity: O(r*c).
func (m *Dense) SubScalarInPlace(s float64) {
	applyScalarInPlace(m, func(v float64) float64 { return v - s })
}

// MulScalarInPlace multiplies every element of m by s. Complexity: O(r*c).
func (m *Dense) MulScalarInPlace(s float64) {
	applyScalarInPlace(m, func(v float64) float64 { return v * s })
}

// DivScalarInPlace divides every element of m by s. Complexity: O(r*c).
func (m *Dense) DivScalarInPlace(s float64) {
	applyScalarInPlace(m, func(v float64) float64 { return v / s })
}

// ModScalarInPlace replaces every element with math.Mod(element, s).
// Complexity: O(r*c).
func (m *Dense) ModScalarInPlace(s float64) {
	applyScalarInPlace(m, func(v float64) float64 { return math.Mod(v, s) })
}

// Add returns a + b elementwise.
//
// Errors:
//   - ErrNilMatrix: either operand is nil.
//   - ErrDimensionMismatch: shapes differ.
//
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := newDense(a.r, a.c)
	for k := range a.data {
		out.data[k] = a.data[k] + b.data[k]
	}

	return out, nil
}

// Sub returns a - b elementwise.
//
// Errors:
//   - ErrNilMatrix: either operand is nil.
//   - ErrDimensionMismatch: shapes differ.
//
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := newDense(a.r, a.c)
	for k := range a.data {
		out.data[k] = a.data[k] - b.data[k]
	}

	return out, nil
}

// AddInPlace adds b into the receiver elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) AddInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for k := range m.data {
		m.data[k] += b.data[k]
	}

	return nil
}

// SubInPlace subtracts b from the receiver elementwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense) SubInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	for k := range m.data {
		m.data[k] -= b.data[k]
	}

	return nil
}

// Mul computes the matrix product C = A·B.
//
// Implementation:
//   - Stage 1 (Validate): a non-nil, b non-nil, a.Cols == b.Rows.
//   - Stage 2 (Execute): C[i,j] = Row_i(A) · Col_j(B) using the zero-copy
//     views, filling C column by column (storage order).
//
// Inputs:
//   - a: M×N left operand.
//   - b: N×P right operand.
//
// Returns:
//   - M×P product matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions).
//
// Determinism: fixed i/j/k loop order; bitwise-reproducible across runs.
// Complexity: O(M·N·P) time, O(M·P) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// predeclare loop variables
	var i, j int
	out := newDense(a.r, b.c)
	for j = 0; j < b.c; j++ {
		bc := view{data: b.data, start: j * b.r, stride: 1, length: b.r}
		for i = 0; i < a.r; i++ {
			ar := view{data: a.data, start: i, stride: a.r, length: a.c}
			out.data[j*a.r+i] = dotRange(ar, bc, 0, a.c)
		}
	}

	return out, nil
}

// MatVec computes y = A·x for a dense matrix and a plain vector.
//
// Errors:
//   - ErrNilMatrix: a is nil or x is nil.
//   - ErrDimensionMismatch: len(x) != a.Cols.
//
// Complexity: O(r*c).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	var i, j int
	y := make([]float64, a.r)
	for j = 0; j < a.c; j++ {
		base := j * a.r
		for i = 0; i < a.r; i++ {
			y[i] += a.data[base+i] * x[j]
		}
	}

	return y, nil
}

// Neg returns -m elementwise. Complexity: O(r*c).
func Neg(m *Dense) *Dense {
	return applyScalar(m, func(v float64) float64 { return -v })
}

// NegInPlace negates every element of m. Complexity: O(r*c).
func (m *Dense) NegInPlace() {
	applyScalarInPlace(m, func(v float64) float64 { return -v })
}

// Not returns the elementwise logical negation: zero becomes 1, any nonzero
// value (including NaN, which compares unequal to zero) becomes 0.
// Complexity: O(r*c).
func Not(m *Dense) *Dense {
	return applyScalar(m, logicalNot)
}

// NotInPlace applies the elementwise logical negation to m. Complexity: O(r*c).
func (m *Dense) NotInPlace() {
	applyScalarInPlace(m, logicalNot)
}

func logicalNot(v float64) float64 {
	if v == 0 {
		return 1
	}

	return 0
}

// Transpose returns mᵀ: a fresh c×r matrix with element (j, i) equal to
// m's (i, j). Complexity: O(r*c).
func Transpose(m *Dense) *Dense {
	var i, j int
	out := newDense(m.c, m.r)
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			out.data[i*m.c+j] = m.data[j*m.r+i]
		}
	}

	return out
}

// Trace returns the sum of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var t float64
	for d := 0; d < m.r; d++ {
		t += m.data[d*m.r+d]
	}

	return t, nil
}

// Norm returns the Frobenius norm: sqrt of the sum of squared elements.
// Complexity: O(r*c).
func Norm(m *Dense) float64 {
	var s float64
	for _, v := range m.data {
		s += v * v
	}

	return math.Sqrt(s)
}

// Normalize returns m scaled to unit Frobenius norm. When the norm is zero
// the scaling divides by zero and the result is all-NaN, following float64
// semantics. Complexity: O(r*c).
func Normalize(m *Dense) *Dense {
	return DivScalar(m, Norm(m))
}

// Cross computes the 3-dimensional cross product of two 3×1 column vectors.
//
// Errors:
//   - ErrNilMatrix: either operand is nil.
//   - ErrDimensionMismatch: either operand is not 3×1.
//
// Complexity: O(1).
func Cross(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if a.r != 3 || a.c != 1 || b.r != 3 || b.c != 1 {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}

	out := newDense(3, 1)
	out.data[0] = a.data[1]*b.data[2] - a.data[2]*b.data[1]
	out.data[1] = a.data[2]*b.data[0] - a.data[0]*b.data[2]
	out.data[2] = a.data[0]*b.data[1] - a.data[1]*b.data[0]

	return out, nil
}
