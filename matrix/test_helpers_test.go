// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities shared by
//     the package tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/yongkyuns/stack-algebra/matrix"
)

// MustNew allocates an r×c *Dense or fails the test.
func MustNew(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRowMajor builds an r×c *Dense from a row-major flat slice or fails.
func MustRowMajor(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRowMajor(r, c, vals)
	if err != nil {
		t.Fatalf("FromRowMajor(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t *testing.T, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandFilled returns an r×c Dense with deterministic U(-1,1) values by seed.
func RandFilled(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustNew(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// CompareExact asserts strict equality between a matrix and a 2D literal.
// Use only for integer-like or exactly representable values.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareExact: Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts |m[i,j]-want[i][j]| ≤ eps element-wise.
func CompareClose(t *testing.T, want [][]float64, m *matrix.Dense, eps float64) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareClose: Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v = MustAt(t, m, i, j)
			if math.Abs(v-want[i][j]) > eps {
				t.Fatalf("m[%d,%d]=%v; want %v (eps=%g)", i, j, v, want[i][j], eps)
			}
		}
	}
}

// MatricesClose asserts a ≈ b element-wise within eps, same shape required.
func MatricesClose(t *testing.T, a, b *matrix.Dense, eps float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > eps {
				t.Fatalf("mismatch at [%d,%d]: %v vs %v (eps=%g)", i, j, av, bv, eps)
			}
		}
	}
}

// AssertErrorIs wraps errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic asserts that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// AlmostEqualSlice checks |a[i]-b[i]| ≤ eps for all i (boolean, not fatal).
func AlmostEqualSlice(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// ---------- bench helpers ----------

func benchRandDense(b *testing.B, r, c int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, rng.Float64()*2-1)
		}
	}

	return m
}
