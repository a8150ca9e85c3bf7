// SPDX-License-Identifier: MIT

package matrix

import (
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/katalvlaran/boxmat/algebra"
)

// mulParallel splits the output rows of a × b into contiguous bands and
// computes each band on a bounded worker pool.
//
// Implementation:
//   - Stage 1: validate shapes; allocate the result once.
//   - Stage 2: band size = ceil(rows / workers); one task per band.
//   - Stage 3: wait for the group; a task panic surfaces as an error.
//
// Behavior highlights:
//   - Operands are only read; each task writes a disjoint row range of the
//     result, so no locking is needed.
//   - Every cell is produced by the same mulRows fold as the sequential
//     kernel, so results are identical to Mul/MulWith.
//
// Complexity:
//   - Time O(r*n*c / workers) wall clock, Space O(r*c).
func mulParallel[T any](a, b *Dense[T], zero T, add, mul binaryOp[T], workers int) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	res := newDense[T](a.r, b.c)
	if len(res.data) == 0 {
		return res, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > a.r {
		workers = a.r
	}
	band := (a.r + workers - 1) / workers

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for from := 0; from < a.r; from += band {
		from := from // per-iteration copy: go directive is 1.21 (pre-1.22 loop var semantics)
		to := min(from+band, a.r)
		group.Submit(func() {
			mulRows(res, a, b, zero, add, mul, from, to)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}

// MulParallelWith is MulWith evaluated on up to workers goroutines.
// workers <= 0 selects runtime.GOMAXPROCS(0).
// Errors: ErrNilSemiring, ErrNilMatrix, ErrDimensionMismatch (as *ShapeError).
func MulParallelWith[T any](s algebra.Semiring[T], a, b *Dense[T], workers int) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opMulParallel, ErrNilSemiring)
	}

	return mulParallel(a, b, s.Zero(), s.Add, s.Mul, workers)
}

// MulParallel is Mul evaluated on up to workers goroutines.
// workers <= 0 selects runtime.GOMAXPROCS(0).
func MulParallel[T algebra.Number](a, b *Dense[T], workers int) (*Dense[T], error) {
	var zero T
	return mulParallel(a, b, zero, nativeAdd[T], nativeMul[T], workers)
}
