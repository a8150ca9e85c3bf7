// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide intention-revealing aliases for the canonical kernels.
//   - Avoid any logic duplication — each facade delegates to its kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels.

package matrix

import "github.com/katalvlaran/boxmat/algebra"

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[T algebra.Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T algebra.Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T algebra.Number](a, b *Dense[T]) (*Dense[T], error) { return Hadamard(a, b) }

// ZerosLike returns a zero matrix with the same shape as m.
// Handy to build additive identities for tests and accumulators.
func ZerosLike[T algebra.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return Zeros[T](m.r, m.c)
}

// IdentityLike returns I with dimension = m.Rows(); requires a square m.
func IdentityLike[T algebra.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opIdentity, &ShapeError{Left: m.Shape(), Right: Shape{Rows: m.c, Cols: m.r}})
	}

	return Identity[T](m.r)
}
