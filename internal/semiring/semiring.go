// Package semiring generalises square-matrix multiplication and
// exponentiation over an arbitrary semiring. Matrix powers are computed by
// algebra.PowerMonoid with the semiring's identity matrix as the identity,
// so the binary exponentiation loop is never re-derived here.
//
// Stock instances: Ordinary (+, ×), Tropical (min, +) for shortest paths and
// Boolean (∨, ∧) for reachability.
package semiring

import (
	"github.com/agbru/powkit/internal/algebra"
)

// Semiring packages the two operations matrix multiplication needs.
//
// Callers guarantee the laws: Add is associative and commutative with
// identity Zero, Mul is associative with identity One, and Mul distributes
// over Add.
type Semiring[T any] struct {
	// Name is used in log lines and error messages.
	Name string
	Add  algebra.BinaryOp[T]
	Zero T
	Mul  algebra.BinaryOp[T]
	One  T
}

// Ordinary returns the semiring (N, +, 0, ×, 1).
func Ordinary[N algebra.Number]() Semiring[N] {
	return Semiring[N]{
		Name: "ordinary",
		Add:  algebra.Add[N],
		Zero: 0,
		Mul:  algebra.Mul[N],
		One:  1,
	}
}

// Boolean returns the semiring ({false, true}, ∨, false, ∧, true).
func Boolean() Semiring[bool] {
	return Semiring[bool]{
		Name: "boolean",
		Add:  func(a, b bool) bool { return a || b },
		Zero: false,
		Mul:  func(a, b bool) bool { return a && b },
		One:  true,
	}
}
