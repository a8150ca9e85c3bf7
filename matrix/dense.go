// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & constructors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee the shape invariant len(data) == rows*cols after every constructor.
//   - Keep the public surface value-oriented: no exported mutators; kernels
//     always return freshly allocated matrices.
//
// Complexity quicksheet:
//   - New/Zeros/Ones: O(r*c); Identity: O(n^2); At: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boxmat/algebra"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers

	opNew      = "New"
	opZeros    = "Zeros"
	opOnes     = "Ones"
	opIdentity = "Identity"
	opFromFunc = "NewFromFunc"
)

// Dense is a row-major matrix of T.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c; element (i,j) lives at i*c + j.
//
// The zero value is a valid 0×0 matrix.
type Dense[T any] struct {
	r, c int
	data []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// newDense allocates an r×c matrix filled with T's zero value.
// Callers have already validated r,c >= 0.
func newDense[T any](r, c int) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: make([]T, r*c)}
}

// validateDims rejects negative dimensions and shapes whose element count
// does not fit in an int.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// New creates a rows×cols matrix from elements in row-major order.
//
// Implementation:
//   - Stage 1: validate rows,cols >= 0; reject len(elements) > rows*cols.
//   - Stage 2: copy elements into a fresh buffer of length rows*cols.
//     The tail beyond len(elements) keeps T's zero value (append-only padding).
//
// Behavior highlights:
//   - The caller's slice is never retained; later writes to it do not leak in.
//   - Original elements occupy indices 0..len(elements)-1 in order.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrShapeOverflow     (too many elements for the declared shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, elements []T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if capacity := rows * cols; len(elements) > capacity {
		return nil, matrixErrorf(opNew, fmt.Errorf(
			"%d elements given, but a %d by %d matrix can only hold %d: %w",
			len(elements), rows, cols, capacity, ErrShapeOverflow))
	}

	m := newDense[T](rows, cols)
	copy(m.data, elements) // remaining cells stay at T's zero value

	return m, nil
}

// NewFromFunc creates a rows×cols matrix with element (i,j) = fn(i,j).
// fn is called exactly once per cell in row-major order.
func NewFromFunc[T any](rows, cols int, fn func(i, j int) T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromFunc, err)
	}

	m := newDense[T](rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[m.offset(i, j)] = fn(i, j)
		}
	}

	return m, nil
}

// fill allocates rows×cols and sets every cell to v.
func fill[T any](tag string, rows, cols int, v T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	m := newDense[T](rows, cols)
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// ZerosWith returns a rows×cols matrix filled with s.Zero().
// Errors: ErrNilSemiring, ErrInvalidDimensions.
func ZerosWith[T any](s algebra.Semiring[T], rows, cols int) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opZeros, ErrNilSemiring)
	}

	return fill(opZeros, rows, cols, s.Zero())
}

// OnesWith returns a rows×cols matrix filled with s.One().
// Errors: ErrNilSemiring, ErrInvalidDimensions.
func OnesWith[T any](s algebra.Semiring[T], rows, cols int) (*Dense[T], error) {
	if s == nil {
		return nil, matrixErrorf(opOnes, ErrNilSemiring)
	}

	return fill(opOnes, rows, cols, s.One())
}

// IdentityWith returns the n×n matrix with s.One() on the diagonal and
// s.Zero() elsewhere.
//
// Implementation:
//   - Stage 1: allocate via ZerosWith (validates s and n).
//   - Stage 2: write s.One() on the diagonal in a single i-loop.
//
// Complexity:
//   - Time O(n^2) fill + O(n) diagonal writes.
func IdentityWith[T any](s algebra.Semiring[T], n int) (*Dense[T], error) {
	m, err := ZerosWith(s, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := s.One()
	for i := 0; i < n; i++ {
		m.data[m.offset(i, i)] = one
	}

	return m, nil
}

// Zeros returns a rows×cols matrix of 0.
func Zeros[T algebra.Number](rows, cols int) (*Dense[T], error) {
	return ZerosWith[T](algebra.Numeric[T]{}, rows, cols)
}

// Ones returns a rows×cols matrix of 1.
func Ones[T algebra.Number](rows, cols int) (*Dense[T], error) {
	return OnesWith[T](algebra.Numeric[T]{}, rows, cols)
}

// Identity returns I_n over a built-in numeric type.
func Identity[T algebra.Number](n int) (*Dense[T], error) {
	return IdentityWith[T](algebra.Numeric[T]{}, n)
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns the (rows, cols) pair.
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Len returns the number of stored elements (always Rows()*Cols()).
func (m *Dense[T]) Len() int { return len(m.data) }

// offset is the single source of the row-major index formula.
// Callers guarantee 0 <= row < r and 0 <= col < c.
func (m *Dense[T]) offset(row, col int) int { return row*m.c + col }

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[m.offset(row, col)], nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[m.offset(i, 0):m.offset(i, 0)+m.c])

	return out, nil
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Data()}
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Floating-point NaN never equals itself, so matrices holding NaN are unequal.
func Equal[T comparable](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
