// SPDX-License-Identifier: MIT

// Package matrix implements a generic dense matrix value type.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix owning a flat buffer of Rows()*Cols()
//     elements; element (i, j) lives at index i*Cols() + j.
//   - Constructors: New (explicit elements, zero-padded), NewFromFunc,
//     Zeros, Ones, Identity and their *With forms for custom algebras.
//   - Arithmetic: Add, Mul, Hadamard (native operators over algebra.Number)
//     and AddWith, MulWith, HadamardWith (any algebra.Semiring[T]).
//     MulParallel/MulParallelWith compute the same product on a worker pool.
//   - Boxed text rendering via String and Render.
//
// A 2×2 matrix of small integers renders as:
//
//	┌     ┐
//	│ 1 2 │
//	│ 3 4 │
//	└     ┘
//
// All operations are value-producing: operands are never mutated and every
// result is freshly allocated. Shape violations surface as errors
// (ErrShapeOverflow, ErrDimensionMismatch) before any result is built.
package matrix
