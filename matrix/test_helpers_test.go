// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by kernel and rendering tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/boxmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew builds a rows×cols matrix from elements or fails the test.
func MustNew[T any](tb testing.TB, rows, cols int, elements []T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(rows, cols, elements)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandInts builds a rows×cols int matrix with values in [-9, 9] from a fixed seed.
func RandInts(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFromFunc(rows, cols, func(_, _ int) int {
		return rng.Intn(19) - 9
	})
	require.NoError(tb, err)

	return m
}

// RandFloats builds a rows×cols float64 matrix of small integral values from a
// fixed seed. Integral values keep every product and sum exact, so results can
// be compared bitwise across summation orders.
func RandFloats(tb testing.TB, rows, cols int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFromFunc(rows, cols, func(_, _ int) float64 {
		return float64(rng.Intn(19) - 9)
	})
	require.NoError(tb, err)

	return m
}

// requireShapeInvariant asserts len(data) == rows*cols.
func requireShapeInvariant[T any](tb testing.TB, m *matrix.Dense[T]) {
	tb.Helper()
	require.Equal(tb, m.Rows()*m.Cols(), m.Len())
	require.Len(tb, m.Data(), m.Rows()*m.Cols())
}
