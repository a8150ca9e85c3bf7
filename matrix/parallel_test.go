// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/boxmat/algebra"
	"github.com/katalvlaran/boxmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestMulParallel_MatchesSequential checks bit-identical results for a range
// of shapes and worker counts, including more workers than rows.
func TestMulParallel_MatchesSequential(t *testing.T) {
	t.Parallel()

	shapes := []struct{ m, k, n int }{
		{1, 1, 1}, {7, 5, 3}, {16, 16, 16}, {33, 4, 9},
	}
	for _, sh := range shapes {
		for _, workers := range []int{0, 1, 2, 3, 8, 64} {
			sh, workers := sh, workers
			t.Run(fmt.Sprintf("%dx%dx%d/w=%d", sh.m, sh.k, sh.n, workers), func(t *testing.T) {
				t.Parallel()
				a := RandFloats(t, sh.m, sh.k, 100)
				b := RandFloats(t, sh.k, sh.n, 200)

				seq, err := matrix.Mul(a, b)
				require.NoError(t, err)
				par, err := matrix.MulParallel(a, b, workers)
				require.NoError(t, err)
				require.True(t, matrix.Equal(seq, par))
			})
		}
	}
}

func TestMulParallelWith_CustomAlgebra(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 3, 1, []string{"a", "b", "c"})
	b := MustNew(t, 1, 2, []string{"x", "y"})

	seq, err := matrix.MulWith[string](concat{}, a, b)
	require.NoError(t, err)
	par, err := matrix.MulParallelWith[string](concat{}, a, b, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(seq, par))
	require.Equal(t, "(+cy)", MustAt(t, par, 2, 1))
}

func TestMulParallel_Errors(t *testing.T) {
	t.Parallel()

	a := MustNew[int](t, 2, 3, nil)

	_, err := matrix.MulParallel(a, a, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err, "MulParallel: 2x3 vs 2x3: matrix: dimension mismatch")

	_, err = matrix.MulParallel(nil, a, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MulParallelWith[int](nil, a, a, 2)
	require.ErrorIs(t, err, matrix.ErrNilSemiring)
}

func TestMulParallel_Empty(t *testing.T) {
	t.Parallel()

	a := MustNew[float64](t, 0, 3, nil)
	b := MustNew[float64](t, 3, 4, nil)
	got, err := matrix.MulParallel(a, b, 4)
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 0, Cols: 4}, got.Shape())

	// Inner dimension 0 still fills with the additive identity.
	c := MustNew[bool](t, 2, 0, nil)
	d := MustNew[bool](t, 0, 2, nil)
	got2, err := matrix.MulParallelWith[bool](algebra.Boolean{}, c, d, 4)
	require.NoError(t, err)
	require.Equal(t, make([]bool, 4), got2.Data())
}
