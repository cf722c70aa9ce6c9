// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Compare contents through go-cmp so failures print a readable diff.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/imatrix/matrix"
)

// testSeed is the fixed seed used by every random fixture.
const testSeed int64 = 20240501

// MustRows builds a matrix from a rectangular 2D literal or fails the test.
func MustRows(tb testing.TB, rows [][]int32) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, matrix.WithSeed(testSeed))
	require.NoError(tb, err)

	return m
}

// MustZeros allocates an r×c zero matrix or fails the test.
func MustZeros(tb testing.TB, r, c int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewZeros(r, c, matrix.WithSeed(testSeed))
	require.NoError(tb, err)

	return m
}

// MustRandom allocates an r×c matrix with values in [0, maxValue] drawn from seed.
func MustRandom(tb testing.TB, r, c int, seed int64, maxValue int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewShaped(r, c, true, matrix.WithSeed(seed), matrix.WithMaxValue(maxValue))
	require.NoError(tb, err)

	return m
}

// requireData asserts that m holds exactly want, printing a cmp diff on failure.
func requireData(tb testing.TB, want [][]int32, m *matrix.Matrix) {
	tb.Helper()
	if diff := cmp.Diff(want, m.Data()); diff != "" {
		tb.Fatalf("matrix contents mismatch (-want +got):\n%s", diff)
	}
}

// requireShape asserts the matrix dimensions.
func requireShape(tb testing.TB, m *matrix.Matrix, rows, cols int) {
	tb.Helper()
	r, c := m.Shape()
	require.Equal(tb, rows, r, "rows")
	require.Equal(tb, cols, c, "cols")
}

// requireInRange asserts every element lies in [0, hi].
func requireInRange(tb testing.TB, m *matrix.Matrix, hi int32) {
	tb.Helper()
	for i, v := range m.ToSlice() {
		require.GreaterOrEqual(tb, v, int32(0), "element %d", i)
		require.LessOrEqual(tb, v, hi, "element %d", i)
	}
}
