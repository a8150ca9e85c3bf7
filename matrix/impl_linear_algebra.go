// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Dense: element-wise
// addition, matrix multiplication and the Hadamard product. All kernels
// validate before allocating, never mutate their operands and always return
// a freshly allocated result.
//
// Purpose:
//   - Two entry families share one implementation per operation:
//     the *With forms take an explicit algebra.Semiring[T] (any element type),
//     the plain forms are constrained by algebra.Number and use native operators.
//   - Define operation tags for uniform error reporting.

package matrix

import "github.com/katalvlaran/boxmat/algebra"

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opMul         = "Mul"
	opHadamard    = "Hadamard"
	opMulParallel = "MulParallel"
)

// binaryOp is a closed binary operation on T.
type binaryOp[T any] func(x, y T) T

// zipWith computes out[i] = f(a[i], b[i]) over identically shaped operands.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); nothing is allocated on failure.
//   - Stage 2: single flat loop 0..n-1 into a fresh buffer.
//
// Errors:
//   - ErrNilMatrix, *ShapeError (ErrDimensionMismatch), wrapped with tag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func zipWith[T any](tag string, a, b *Dense[T], f binaryOp[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newDense[T](a.r, a.c)
	for idx := range res.data {
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// mulRows writes rows [from, to) of dst = a × b.
//
// Every output cell is an independent left fold starting at zero with the
// inner index k ascending:
//
//	acc = zero; for k := 0..n-1 { acc = add(acc, mul(a[i,k], b[k,j])) }
//
// The fold order is part of the contract: it keeps results deterministic for
// element types whose add/mul are neither associative nor commutative.
// Callers guarantee shapes are compatible and dst is (a.r × b.c).
func mulRows[T any](dst, a, b *Dense[T], zero T, add, mul binaryOp[T], from, to int) {
	n, p := a.c, b.c
	var i, j, k int
	var acc T
	for i = from; i < to; i++ {
		for j = 0; j < p; j++ {
			acc = zero
			for k = 0; k < n; k++ {
				acc = add(acc, mul(a.data[a.offset(i, k)], b.data[b.offset(k, j)]))
			}
			dst.data[dst.offset(i, j)] = acc
		}
	}
}

// mulWith validates, allocates and runs the sequential product.
func mulWith[T any](tag string, a, b *Dense[T], zero T, add, mul binaryOp[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newDense[T](a.r, b.c)
	mulRows(res, a, b, zero, add, mul, 0, a.r)

	return res, nil
}

// AddWith computes the element-wise sum C = A + B under s.
//
// Implementation:
//   - Stage 1: reject a nil semiring; validate both operands are non-nil and
//     have identical shapes.
//   - Stage 2: single flat loop C[i] = s.Add(A[i], B[i]).
//
// Returns:
//   - *Dense[T]: a new matrix with the common shape.
//
// Errors:
//   - ErrNilSemiring, ErrNilMatrix, ErrDimensionMismatch (as *ShapeError).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddWith[T any](s algebra.Semiring[T], a, b *Dense[T]) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opAdd, ErrNilSemiring)
	}

	return zipWith(opAdd, a, b, s.Add)
}

// HadamardWith computes the element-wise product C = A ⊙ B under s.
// Same shape rule and errors as AddWith. Hadamard ≠ Mul; use MulWith for A×B.
// Complexity: Time O(r*c), Space O(r*c).
func HadamardWith[T any](s algebra.Semiring[T], a, b *Dense[T]) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opHadamard, ErrNilSemiring)
	}

	return zipWith(opHadamard, a, b, s.Mul)
}

// MulWith performs the matrix product C = A × B under s.
//
// Implementation:
//   - Stage 1: reject a nil semiring; validate non-nil operands and
//     A.Cols() == B.Rows().
//   - Stage 2: allocate C with shape (A.Rows() × B.Cols()).
//   - Stage 3: for each (i, j), fold s.Add over k ascending starting at s.Zero().
//
// Behavior highlights:
//   - Deterministic i→j→k loop order; no zero-skipping, so NaN/Inf and
//     non-absorbing zeros propagate exactly as s defines them.
//   - An inner dimension of 0 yields a result filled with s.Zero().
//
// Errors:
//   - ErrNilSemiring, ErrNilMatrix, ErrDimensionMismatch (as *ShapeError).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulWith[T any](s algebra.Semiring[T], a, b *Dense[T]) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opMul, ErrNilSemiring)
	}

	return mulWith(opMul, a, b, s.Zero(), s.Add, s.Mul)
}

// nativeAdd and nativeMul are the operator-based kernels for built-in numbers.
func nativeAdd[T algebra.Number](x, y T) T { return x + y }
func nativeMul[T algebra.Number](x, y T) T { return x * y }

// Add computes the element-wise sum C = A + B using native +.
// Errors: ErrNilMatrix, ErrDimensionMismatch (as *ShapeError).
// Complexity: O(r*c).
func Add[T algebra.Number](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(opAdd, a, b, nativeAdd[T])
}

// Hadamard computes the element-wise product C = A ⊙ B using native *.
// Errors: ErrNilMatrix, ErrDimensionMismatch (as *ShapeError).
// Complexity: O(r*c).
func Hadamard[T algebra.Number](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(opHadamard, a, b, nativeMul[T])
}

// Mul performs the matrix product C = A × B using native + and *.
// The accumulation order is the same left fold as MulWith.
// Errors: ErrNilMatrix, ErrDimensionMismatch (as *ShapeError).
// Complexity: O(r*n*c).
func Mul[T algebra.Number](a, b *Dense[T]) (*Dense[T], error) {
	var zero T
	return mulWith(opMul, a, b, zero, nativeAdd[T], nativeMul[T])
}
