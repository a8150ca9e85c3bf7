// SPDX-License-Identifier: MIT

// Package algebra declares the element capability sets consumed by the
// matrix kernels.
//
// A matrix over T only needs a handful of things from T: an additive
// identity (used for padding and for dot-product accumulators), a
// multiplicative identity (used by Ones and Identity), and closed binary
// addition and multiplication. Semiring[T] names exactly that set.
//
// The package ships three implementations:
//
//   - Numeric[T]: ordinary arithmetic for every Go integer, float and
//     complex type (T is constrained by Number, so instantiating it with an
//     unsupported type fails at compile time).
//   - MinPlus: the tropical (min, +) semiring over float64. Matrix products
//     under MinPlus relax path lengths, the classic shortest-path algebra.
//   - Boolean: the (or, and) semiring. Matrix products under Boolean compose
//     reachability relations.
//
// Custom element types implement Semiring[T] themselves and are then usable
// with every *With kernel in package matrix.
package algebra
