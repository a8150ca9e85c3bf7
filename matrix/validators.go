// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return unwrapped errors so call sites can tag them uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T any](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Returns:
//   - nil on success.
//   - ErrNilMatrix if either operand is nil.
//   - *ShapeError (unwrapping to ErrDimensionMismatch) carrying both shapes.
//
// Complexity: O(1).
// Used by Add and Hadamard.
func ValidateSameShape[T any](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return &ShapeError{Left: a.Shape(), Right: b.Shape()}
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
//
// Returns:
//   - nil on success.
//   - ErrNilMatrix if either operand is nil.
//   - *ShapeError (unwrapping to ErrDimensionMismatch) on inner mismatch.
//
// Complexity: O(1).
func ValidateMulCompatible[T any](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return &ShapeError{Left: a.Shape(), Right: b.Shape()}
	}

	return nil
}
