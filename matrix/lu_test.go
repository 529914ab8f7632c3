// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the LU engine: decomposition
// factors, pivot determinism, determinants, triangular inversions, the full
// inverse and the linear solver.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yongkyuns/stack-algebra/matrix"
)

func TestLUFactors(t *testing.T) {
	t.Parallel()

	a := MustRowMajor(t, 3, 3, []float64{
		1, 3, 5,
		2, 4, 7,
		1, 1, 0,
	})
	l, u, p, err := matrix.LU(a)
	require.NoError(t, err)

	// The pivoting and elimination are exact on this fixture.
	CompareExact(t, [][]float64{
		{1, 0, 0},
		{0.5, 1, 0},
		{0.5, -1, 1},
	}, l)
	CompareExact(t, [][]float64{
		{2, 4, 7},
		{0, 1, 1.5},
		{0, 0, -2},
	}, u)
	CompareExact(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}, p)

	// Input is untouched.
	CompareExact(t, [][]float64{
		{1, 3, 5},
		{2, 4, 7},
		{1, 1, 0},
	}, a)
}

func TestLUReconstruction(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3, 42} {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			a := RandFilled(t, 6, 6, seed)
			l, u, p, err := matrix.LU(a)
			require.NoError(t, err)

			pa, err := matrix.Mul(p, a)
			require.NoError(t, err)
			lu, err := matrix.Mul(l, u)
			require.NoError(t, err)
			MatricesClose(t, pa, lu, 1e-10)
		})
	}
}

func TestLUPivotTieBreaksToLowestRow(t *testing.T) {
	t.Parallel()

	// |2| and |-2| tie in column 0: the pivot must stay at row 0,
	// so P is the identity.
	a := MustRowMajor(t, 2, 2, []float64{
		2, 1,
		-2, 3,
	})
	_, _, p, err := matrix.LU(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{1, 0},
		{0, 1},
	}, p)
}

func TestLUErrors(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.LU(MustNew(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, _, _, err = matrix.LU(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		n    int
		vals []float64
		want float64
	}{
		{"3x3", 3, []float64{
			6, 2, 3,
			1, 1, 1,
			0, 4, 9,
		}, 24},
		{"2x2", 2, []float64{
			3, 7,
			1, -4,
		}, -19},
		{"2x2_singular_scaled_rows", 2, []float64{
			1, 2,
			4, 8,
		}, 0},
		{"2x2_singular_equal_rows", 2, []float64{
			1, 1,
			2, 2,
		}, 0},
		{"4x4_singular", 4, []float64{
			1, 2, 3, 4,
			2, 5, 7, 3,
			4, 10, 14, 6,
			3, 4, 2, 7,
		}, 0},
		// Pivoting exchanges exactly one row pair here; the sign follows
		// the actual swap count, giving the true determinant +284.
		{"4x4_one_swap", 4, []float64{
			11, 9, 24, 2,
			1, 5, 2, 6,
			3, 17, 18, 1,
			2, 5, 7, 1,
		}, 284},
		{"11x11_singular", 11, []float64{
			2, 3, 0, 9, 0, 1, 0, 1, 1, 2, 1,
			1, 1, 0, 3, 0, 0, 0, 9, 2, 3, 1,
			1, 4, 0, 2, 8, 5, 0, 3, 6, 1, 9,
			0, 0, 0, 0, 0, 5, 0, 0, 0, 0, 0,
			2, 2, 4, 1, 1, 2, 1, 6, 9, 0, 7,
			0, 0, 0, 6, 0, 7, 0, 1, 0, 0, 0,
			2, 5, 0, 7, 0, 4, 6, 8, 5, 1, 3,
			0, 0, 0, 1, 0, 4, 0, 1, 0, 0, 0,
			0, 0, 0, 8, 0, 2, 0, 0, 0, 0, 0,
			2, 1, 0, 0, 0, 1, 0, 0, 2, 1, 1,
			2, 6, 0, 1, 0, 30, 0, 2, 3, 2, 1,
		}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := MustRowMajor(t, tc.n, tc.n, tc.vals)
			det, err := matrix.Det(a)
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, 1e-10)
		})
	}
}

// TestDetSignMatchesCofactorExpansion pins the sign rule: the sign comes
// from the parity of actual row exchanges, so a 3x3 needing no pivot swap
// must keep its positive determinant.
func TestDetSignMatchesCofactorExpansion(t *testing.T) {
	t.Parallel()

	// Strictly diagonally dominant with decreasing magnitudes: no row swap
	// ever happens, det by cofactor expansion is 14.
	a := MustRowMajor(t, 3, 3, []float64{
		5, 1, 0,
		1, 4, 1,
		0, 1, 1,
	})
	det, err := matrix.Det(a)
	require.NoError(t, err)
	require.InDelta(t, 14.0, det, 1e-10)
}

// TestDetSignWithPivotSwap pins the sign when pivoting does exchange rows:
// on this fixture the decomposition performs exactly one row swap, so the
// raw diagonal product carries det(P·A) = -284 and the swap parity must
// flip it back to the true determinant +284. A fixed dimension-parity
// correction (negate only when D is odd) would leave the -284 artifact
// here, since D = 4 is even.
func TestDetSignWithPivotSwap(t *testing.T) {
	t.Parallel()

	a := MustRowMajor(t, 4, 4, []float64{
		11, 9, 24, 2,
		1, 5, 2, 6,
		3, 17, 18, 1,
		2, 5, 7, 1,
	})

	// Pivoting moved at least one row: P is not the identity.
	_, _, p, err := matrix.LU(a)
	require.NoError(t, err)
	id, err := matrix.Identity(4)
	require.NoError(t, err)
	require.False(t, p.Equal(id))

	det, err := matrix.Det(a)
	require.NoError(t, err)
	require.InDelta(t, 284.0, det, 1e-9)
}

func TestDetErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Det(MustNew(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Det(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvertUpperTriangular(t *testing.T) {
	t.Parallel()

	u := MustRowMajor(t, 3, 3, []float64{
		2, 4, 6,
		0, -1, -8,
		0, 0, 96,
	})
	inv, err := matrix.InvertUpperTriangular(u)
	require.NoError(t, err)
	CompareClose(t, [][]float64{
		{0.5, 2, 0.13541667},
		{0, -1, -0.08333333},
		{0, 0, 0.01041667},
	}, inv, 1e-6)

	// U·U⁻¹ ≈ I and the input is untouched.
	prod, err := matrix.Mul(u, inv)
	require.NoError(t, err)
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	MatricesClose(t, prod, id, 1e-10)
	CompareExact(t, [][]float64{
		{2, 4, 6},
		{0, -1, -8},
		{0, 0, 96},
	}, u)
}

func TestInvertUpperTriangularSingular(t *testing.T) {
	t.Parallel()

	u := MustRowMajor(t, 3, 3, []float64{
		2, 4, 6,
		0, 0, -8,
		0, 0, 96,
	})
	_, err := matrix.InvertUpperTriangular(u)
	AssertErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.InvertUpperTriangular(MustNew(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.InvertUpperTriangular(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvertLowerTriangular(t *testing.T) {
	t.Parallel()

	l := MustRowMajor(t, 3, 3, []float64{
		1, 0, 0,
		8, 1, 0,
		4, 9, 1,
	})
	inv, err := matrix.InvertLowerTriangular(l)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{1, 0, 0},
		{-8, 1, 0},
		{68, -9, 1},
	}, inv)

	prod, err := matrix.Mul(l, inv)
	require.NoError(t, err)
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	MatricesClose(t, prod, id, 1e-12)
}

func TestInvertLowerTriangularNotUnit(t *testing.T) {
	t.Parallel()

	l := MustRowMajor(t, 2, 2, []float64{
		2, 0,
		3, 1,
	})
	_, err := matrix.InvertLowerTriangular(l)
	AssertErrorIs(t, err, matrix.ErrNotUnitTriangular)

	_, err = matrix.InvertLowerTriangular(MustNew(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.InvertLowerTriangular(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	a := MustRowMajor(t, 3, 3, []float64{
		6, 2, 3,
		1, 1, 1,
		0, 4, 9,
	})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{
		{0.20833333, -0.25, -0.04166667},
		{-0.375, 2.25, -0.125},
		{0.16666667, -1, 0.16666667},
	}, inv, 1e-6)

	b := MustRowMajor(t, 4, 4, []float64{
		11, 9, 24, 2,
		1, 5, 2, 6,
		3, 17, 18, 1,
		2, 5, 7, 1,
	})
	binv, err := matrix.Inverse(b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{
		{0.72183099, 0.46126761, 1.02112676, -5.23239437},
		{0.28521127, 0.23591549, 0.59859155, -2.58450704},
		{-0.37676056, -0.29929577, -0.65492958, 3.20422535},
		{-0.23239437, -0.00704225, -0.45070423, 1.95774648},
	}, binv, 1e-6)
}

func TestInverseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{5, 11, 23} {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			// Random U(-1,1) with a boosted diagonal: comfortably invertible.
			a := RandFilled(t, 5, 5, seed)
			for d := 0; d < 5; d++ {
				MustSet(t, a, d, d, MustAt(t, a, d, d)+5)
			}

			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			prod, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			id, err := matrix.Identity(5)
			require.NoError(t, err)
			MatricesClose(t, prod, id, 1e-6)
		})
	}
}

func TestInverseSingular(t *testing.T) {
	t.Parallel()

	a := MustRowMajor(t, 2, 2, []float64{
		1, 2,
		2, 4,
	})
	_, err := matrix.Inverse(a)
	AssertErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustNew(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Inverse(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	a := MustRowMajor(t, 3, 3, []float64{
		6, 2, 3,
		1, 1, 1,
		0, 4, 9,
	})
	// b = A·x for x = (1, 2, 3).
	b := []float64{19, 6, 35}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	require.True(t, AlmostEqualSlice(x, []float64{1, 2, 3}, 1e-10),
		"Solve: got %v", x)
}

func TestSolveErrors(t *testing.T) {
	t.Parallel()

	a := MustRowMajor(t, 2, 2, []float64{
		1, 2,
		2, 4,
	})
	_, err := matrix.Solve(a, []float64{1, 1})
	AssertErrorIs(t, err, matrix.ErrSingular)

	good := MustRowMajor(t, 2, 2, []float64{1, 0, 0, 1})
	_, err = matrix.Solve(good, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(good, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Solve(MustNew(t, 2, 3), []float64{1, 1})
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Solve(nil, []float64{1})
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
