// SPDX-License-Identifier: MIT

// Package boxmat is a small, generic dense-matrix toolkit: build matrices of
// any element type, combine them, and print them inside a box.
//
// What is inside?
//
//	algebra/     — Semiring[T] and the stock semirings (Numeric, MinPlus, Boolean)
//	matrix/      — Dense[T]: constructors, accessors, Add, Mul, Hadamard,
//	               a parallel Mul on a bounded worker pool, boxed rendering
//	cmd/boxmat/  — CLI: "demo" renders sample matrices, "eval" runs a YAML job
//	examples/    — runnable scenarios (tropical shortest paths, reachability)
//
// Why choose boxmat?
//
//   - One element contract: anything with a zero, a one, + and × works.
//   - Value semantics: kernels never mutate operands and always allocate the result.
//   - Deterministic: every product cell is a left fold with ascending inner index.
//   - Clear failures: sentinel errors matched with errors.Is, shapes in the message.
//
// Quick example:
//
//	m, _ := matrix.New(2, 2, []int{1, 2, 3, 4})
//	fmt.Println(m)
//
//	┌     ┐
//	│ 1 2 │
//	│ 3 4 │
//	└     ┘
//
//	go get github.com/katalvlaran/boxmat/matrix
package boxmat
