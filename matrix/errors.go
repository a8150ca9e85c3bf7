// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinels and the typed ShapeError.
// Kernels return these wrapped with an operation tag; callers match them via
// errors.Is (sentinels) or errors.As (*ShapeError). No exported function
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached with fmt.Errorf("<Op>: %w", err) at the detection site, so
// errors.Is keeps working through any number of wrappers.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> index.

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	// Zero is legal: 0×N and N×0 matrices are well-formed and empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrShapeOverflow is returned by New when more initial elements are
	// supplied than rows*cols can hold.
	ErrShapeOverflow = errors.New("matrix: too many elements for shape")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes or Mul where a.Cols() != b.Rows().
	// It is always delivered inside a *ShapeError carrying both shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense operand was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilSemiring indicates that a nil algebra.Semiring was passed to a
	// *With kernel.
	ErrNilSemiring = errors.New("matrix: nil semiring")
)

// ShapeError reports the two operand shapes of a failed binary operation.
// It unwraps to ErrDimensionMismatch.
type ShapeError struct {
	Left, Right Shape
}

// Error formats as "2x3 vs 3x2: matrix: dimension mismatch".
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s vs %s: %v", e.Left, e.Right, ErrDimensionMismatch)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrDimensionMismatch }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a Dense method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
