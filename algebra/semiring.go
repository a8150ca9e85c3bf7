// SPDX-License-Identifier: MIT

package algebra

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of built-in types with native + and * operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Semiring is the capability set a matrix element type must supply.
//
// Contract:
//   - Add and Mul are closed (the result is again a T).
//   - Zero is the additive identity: Add(Zero(), x) == x.
//   - One is the multiplicative identity: Mul(One(), x) == x.
//
// Associativity and commutativity are NOT assumed by the kernels; matrix
// products fold strictly left-to-right with ascending inner index, so the
// result is deterministic for any implementation.
type Semiring[T any] interface {
	Zero() T
	One() T
	Add(x, y T) T
	Mul(x, y T) T
}

// Compile-time conformance checks.
var (
	_ Semiring[float64] = Numeric[float64]{}
	_ Semiring[int]     = Numeric[int]{}
	_ Semiring[float64] = MinPlus{}
	_ Semiring[bool]    = Boolean{}
)

// Numeric is the usual arithmetic over a built-in numeric type.
type Numeric[T Number] struct{}

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// One returns 1.
func (Numeric[T]) One() T { return 1 }

// Add returns x + y.
func (Numeric[T]) Add(x, y T) T { return x + y }

// Mul returns x * y.
func (Numeric[T]) Mul(x, y T) T { return x * y }

// MinPlus is the tropical semiring (ℝ ∪ {+Inf}, min, +).
// Zero is +Inf ("no path"), One is 0 ("empty path").
type MinPlus struct{}

// Zero returns +Inf.
func (MinPlus) Zero() float64 { return math.Inf(1) }

// One returns 0.
func (MinPlus) One() float64 { return 0 }

// Add returns min(x, y).
func (MinPlus) Add(x, y float64) float64 { return math.Min(x, y) }

// Mul returns x + y. +Inf absorbs: Inf + v == Inf for every finite v.
func (MinPlus) Mul(x, y float64) float64 { return x + y }

// Boolean is the ({false, true}, or, and) semiring.
type Boolean struct{}

// Zero returns false.
func (Boolean) Zero() bool { return false }

// One returns true.
func (Boolean) One() bool { return true }

// Add returns x || y.
func (Boolean) Add(x, y bool) bool { return x || y }

// Mul returns x && y.
func (Boolean) Mul(x, y bool) bool { return x && y }
