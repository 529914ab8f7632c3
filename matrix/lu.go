// SPDX-License-Identifier: MIT
// Package: matrix
// File: lu.go
//
// Purpose:
//   - LU decomposition with partial pivoting and the operations built on it:
//     determinant, triangular inversions, full inverse, and linear solve.
//
// Notes:
//   - All kernels use central validators and return plain sentinels wrapped
//     via matrixErrorf at the facade.
//   - Results are computed fresh on every call; nothing is cached on Dense.

package matrix

import "math"

// ZeroSum is the initial accumulator value for substitution loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exact-zero pivot.
const ZeroPivot = 0.0

// findPivotRow scans column d over rows d..D-1 and returns the row with the
// maximum absolute value. The comparison is a strict "<" on the current best,
// scanning rows in increasing order, so ties resolve to the LOWEST row index.
// This tie-break is part of the observable contract: it fixes which rows P
// swaps and therefore the exact (L, U, P) triple.
// Complexity: O(D-d).
func findPivotRow(u *Dense, d int) int {
	best := d
	for r := d; r < u.r; r++ {
		if math.Abs(u.data[d*u.r+best]) < math.Abs(u.data[d*u.r+r]) {
			best = r
		}
	}

	return best
}

// partialPivot brings the pivot row to the diagonal: rows d and pivot are
// swapped fully in P and U, while in L only the already-computed multiplier
// columns 0..d-1 move. L's unit diagonal and untouched right part stay put.
// Complexity: O(D).
func partialPivot(p, l, u *Dense, d, pivot int) {
	p.SwapRows(d, pivot)
	u.SwapRows(d, pivot)
	for c := 0; c < d; c++ {
		base := c * l.r
		l.data[base+d], l.data[base+pivot] = l.data[base+pivot], l.data[base+d]
	}
}

// gaussEliminate performs one elimination step at diagonal d: for every row r
// below, store the multiplier in L and subtract the scaled pivot row from U
// across ALL columns. Entries left of d are already zero, so the full-row
// update is a numerical no-op there and keeps the loop uniform.
// Complexity: O((D-d)·D).
func gaussEliminate(l, u *Dense, d int) {
	var r, c int
	n := u.r
	for r = d + 1; r < n; r++ {
		l.data[d*n+r] = u.data[d*n+r] / u.data[d*n+d]
		for c = 0; c < n; c++ {
			u.data[c*n+r] -= l.data[d*n+r] * u.data[c*n+d]
		}
	}
}

// luWithSwaps is the shared decomposition core; it additionally reports how
// many actual row exchanges occurred, which Det needs for the sign.
func luWithSwaps(a *Dense) (l, u, p *Dense, swaps int, err error) {
	if err = ValidateSquareNonNil(a); err != nil {
		return nil, nil, nil, 0, err
	}

	n := a.r
	p = identity(n)
	l = identity(n)
	u = a.Clone()

	for d := 0; d < n; d++ {
		pivot := findPivotRow(u, d)
		if pivot != d {
			partialPivot(p, l, u, d, pivot)
			swaps++
		}
		gaussEliminate(l, u, d)
	}

	return l, u, p, swaps, nil
}

// LU decomposes a square matrix with partial pivoting: P·A = L·U.
//
// Implementation:
//   - Stage 1 (Validate): a non-nil and square.
//   - Stage 2 (Decompose): for each diagonal d, pick the pivot row
//     (max |U[r,d]|, ties to the lowest row), swap P/U rows fully and L rows
//     in columns 0..d-1, then run one Gaussian-elimination step.
//
// Behavior highlights:
//   - L is unit lower triangular, U upper triangular, P a permutation matrix.
//   - The pivot tie-break to the lowest row index makes the triple fully
//     deterministic for a given input.
//   - An exact-zero pivot column is NOT an error here: the division produces
//     non-finite multipliers that propagate by float64 semantics; singularity
//     is only reported by the inversion routines.
//
// Inputs:
//   - a: square matrix; not mutated.
//
// Returns:
//   - l, u, p: freshly allocated factors with P·A = L·U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed d → r → c loop order; bitwise-reproducible across runs.
//
// Complexity:
//   - Time O(D³), Space O(D²) for the three factors.
//
// AI-Hints:
//   - Verify results with Mul(p, a) ≈ Mul(l, u); the factors are exact for
//     small integer fixtures.
func LU(a *Dense) (l, u, p *Dense, err error) {
	l, u, p, _, err = luWithSwaps(a)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, p, nil
}

// Det computes the determinant via LU decomposition.
//
// Implementation:
//   - Stage 1 (Decompose): luWithSwaps, tracking the number of actual row
//     exchanges.
//   - Stage 2 (Accumulate): det = (-1)^swaps · Π L[i,i] · Π U[i,i].
//
// Behavior highlights:
//   - The sign comes from the parity of row swaps the pivoting actually
//     performed, so det(P·A) = (-1)^swaps · det(A) holds for every input,
//     not only for special dimension/permutation combinations.
//   - Singular inputs yield an exact 0 diagonal entry in U and hence det 0
//     (up to float rounding for non-integer inputs).
//
// Inputs:
//   - a: square matrix; not mutated.
//
// Returns:
//   - the determinant as float64.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Single fixed-order product over the diagonals.
//
// Complexity:
//   - Time O(D³) dominated by the decomposition.
func Det(a *Dense) (float64, error) {
	l, u, _, swaps, err := luWithSwaps(a)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := a.r
	det := 1.0
	for i := 0; i < n; i++ {
		det *= l.data[i*n+i] * u.data[i*n+i]
	}
	if swaps%2 != 0 {
		det = -det
	}

	return det, nil
}

// InvertUpperTriangular inverts an upper-triangular matrix by back
// substitution.
//
// Implementation:
//   - Stage 1 (Validate): u non-nil and square.
//   - Stage 2 (Back-substitute): walk diagonals from D-1 down to 0 on a
//     working copy; scale row i of the identity-seeded accumulator by
//     1/U[i,i], then eliminate column i from every row above, mirroring each
//     row operation into the accumulator (columns i..D-1 only; entries left
//     of i never change in an upper-triangular inverse).
//
// Behavior highlights:
//   - Singularity is an EXACT test: U[i,i] == 0, no tolerance. Tiny nonzero
//     pivots invert to large finite values rather than failing.
//   - Entries below the diagonal are never read; callers may pass any square
//     matrix and only its upper triangle (with diagonal) matters.
//
// Inputs:
//   - u: square matrix; not mutated (the elimination works on a clone).
//
// Returns:
//   - the inverse, itself upper triangular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (exact-zero diagonal).
//
// Determinism:
//   - Fixed i (descending) → r → c loop order.
//
// Complexity:
//   - Time O(D³), Space O(D²).
func InvertUpperTriangular(u *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(u); err != nil {
		return nil, matrixErrorf(opInvertUpper, err)
	}

	var i, r, c int
	n := u.r
	w := u.Clone()
	acc := identity(n)

	for i = n - 1; i >= 0; i-- {
		diag := w.data[i*n+i]
		if diag == ZeroPivot {
			return nil, matrixErrorf(opInvertUpper, ErrSingular)
		}
		coeff := 1 / diag

		w.data[i*n+i] *= coeff
		for c = i; c < n; c++ {
			acc.data[c*n+i] *= coeff
		}

		for r = 0; r < i; r++ {
			f := -w.data[i*n+r]
			w.data[i*n+r] = 0
			for c = i; c < n; c++ {
				acc.data[c*n+r] += f * acc.data[c*n+i]
			}
		}
	}

	return acc, nil
}

// InvertLowerTriangular inverts a UNIT lower-triangular matrix by forward
// elimination.
//
// Implementation:
//   - Stage 1 (Validate): l non-nil and square.
//   - Stage 2 (Forward-eliminate): walk diagonals 0..D-1 on a working copy;
//     require L[i,i] == 1 exactly, then zero column i below the diagonal,
//     mirroring each row operation into the identity-seeded accumulator
//     (columns 0..i only; the inverse of a unit lower triangle is unit lower
//     triangular).
//
// Behavior highlights:
//   - The unit-diagonal requirement is an EXACT test. This routine is shaped
//     for the L factor produced by LU; general lower-triangular inversion is
//     out of scope.
//
// Inputs:
//   - l: square matrix; not mutated.
//
// Returns:
//   - the inverse, itself unit lower triangular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotUnitTriangular (diagonal != 1).
//
// Determinism:
//   - Fixed i (ascending) → r → c loop order.
//
// Complexity:
//   - Time O(D³), Space O(D²).
func InvertLowerTriangular(l *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(l); err != nil {
		return nil, matrixErrorf(opInvertLower, err)
	}

	var i, r, c int
	n := l.r
	w := l.Clone()
	acc := identity(n)

	for i = 0; i < n; i++ {
		if w.data[i*n+i] != 1 {
			return nil, matrixErrorf(opInvertLower, ErrNotUnitTriangular)
		}
		for r = i + 1; r < n; r++ {
			f := -w.data[i*n+r]
			w.data[i*n+r] = 0
			for c = 0; c <= i; c++ {
				acc.data[c*n+r] += f * acc.data[c*n+i]
			}
		}
	}

	return acc, nil
}

// Inverse computes A⁻¹ through the LU route: A⁻¹ = U⁻¹ · L⁻¹ · P.
//
// Implementation:
//   - Stage 1 (Decompose): LU with partial pivoting.
//   - Stage 2 (Invert factors): InvertLowerTriangular(L) and
//     InvertUpperTriangular(U).
//   - Stage 3 (Compose): Mul(Mul(U⁻¹, L⁻¹), P).
//
// Behavior highlights:
//   - Any failure of either triangular inversion is reported as ErrSingular;
//     for LU factors of a real matrix a non-unit L diagonal can only arise
//     from non-finite propagation out of a singular elimination, so the
//     single sentinel is the honest summary.
//
// Inputs:
//   - a: square matrix; not mutated.
//
// Returns:
//   - freshly allocated inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Deterministic by composition of deterministic kernels.
//
// Complexity:
//   - Time O(D³), Space O(D²).
//
// AI-Hints:
//   - Validate with Mul(a, inv) ≈ Identity(D) at 1e-6 for well-conditioned
//     inputs; tighter bounds need scaling-aware analysis.
func Inverse(a *Dense) (*Dense, error) {
	l, u, p, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	linv, err := InvertLowerTriangular(l)
	if err != nil {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	uinv, err := InvertUpperTriangular(u)
	if err != nil {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	ul, err := Mul(uinv, linv)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Mul(ul, p)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Solve finds x with A·x = b through LU: permute b by P, forward-substitute
// through L (unit diagonal, no division), back-substitute through U.
//
// Inputs:
//   - a: square D×D coefficient matrix; not mutated.
//   - b: right-hand side of length D; not mutated.
//
// Returns:
//   - solution vector x of length D.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != D),
//     ErrSingular (exact-zero pivot on U's diagonal).
//
// Determinism:
//   - Fixed substitution order; bitwise-reproducible.
//
// Complexity:
//   - Time O(D³) for the decomposition, O(D²) for the substitutions.
func Solve(a *Dense, b []float64) ([]float64, error) {
	l, u, p, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.r
	y, err := MatVec(p, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// predeclare loop variables
	var i, j int

	// Forward substitution: L·y' = y, exploiting the unit diagonal.
	for i = 0; i < n; i++ {
		sum := ZeroSum
		for j = 0; j < i; j++ {
			sum += l.data[j*n+i] * y[j]
		}
		y[i] -= sum
	}

	// Back substitution: U·x = y'.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		diag := u.data[i*n+i]
		if diag == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		sum := ZeroSum
		for j = i + 1; j < n; j++ {
			sum += u.data[j*n+i] * x[j]
		}
		x[i] = (y[i] - sum) / diag
	}

	return x, nil
}
