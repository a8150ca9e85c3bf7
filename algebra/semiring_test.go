// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/boxmat/algebra"
	"github.com/stretchr/testify/require"
)

// checkIdentities asserts the identity laws of s on the given samples.
func checkIdentities[T comparable](t *testing.T, s algebra.Semiring[T], samples []T) {
	t.Helper()
	for _, x := range samples {
		require.Equal(t, x, s.Add(s.Zero(), x), "0 + x")
		require.Equal(t, x, s.Add(x, s.Zero()), "x + 0")
		require.Equal(t, x, s.Mul(s.One(), x), "1 * x")
		require.Equal(t, x, s.Mul(x, s.One()), "x * 1")
	}
}

func TestNumericIdentities(t *testing.T) {
	t.Parallel()

	checkIdentities[int](t, algebra.Numeric[int]{}, []int{-7, 0, 1, 42})
	checkIdentities[uint8](t, algebra.Numeric[uint8]{}, []uint8{0, 1, 255})
	checkIdentities[float64](t, algebra.Numeric[float64]{}, []float64{-1.5, 0, 2.25})
	checkIdentities[complex128](t, algebra.Numeric[complex128]{}, []complex128{1 + 2i, -3i})
}

func TestNumericOperations(t *testing.T) {
	t.Parallel()

	s := algebra.Numeric[int64]{}
	require.Equal(t, int64(7), s.Add(3, 4))
	require.Equal(t, int64(12), s.Mul(3, 4))

	c := algebra.Numeric[complex64]{}
	require.Equal(t, complex64(-1), c.Mul(1i, 1i))
}

func TestMinPlus(t *testing.T) {
	t.Parallel()

	s := algebra.MinPlus{}
	require.True(t, math.IsInf(s.Zero(), 1))
	require.Equal(t, 0.0, s.One())
	require.Equal(t, 2.0, s.Add(2, 5))
	require.Equal(t, 7.0, s.Mul(2, 5))
	// +Inf absorbs under Mul and is neutral under Add.
	require.True(t, math.IsInf(s.Mul(s.Zero(), 3), 1))
	checkIdentities[float64](t, s, []float64{-2, 0, 3.5})
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	s := algebra.Boolean{}
	tests := []struct {
		x, y     bool
		add, mul bool
	}{
		{false, false, false, false},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, true, true},
	}
	for _, tc := range tests {
		require.Equal(t, tc.add, s.Add(tc.x, tc.y))
		require.Equal(t, tc.mul, s.Mul(tc.x, tc.y))
	}
	checkIdentities[bool](t, s, []bool{false, true})
}
