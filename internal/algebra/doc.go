// Package algebra implements binary exponentiation once, against an abstract
// associative operator, and specialises it by adding structure:
//
//	Semigroup  Combine(a, b)            PowerSemigroup(a, n ≥ 1)
//	Monoid     + Identity()             PowerMonoid(a, n ≥ 0)
//	Group      + Inverse(a)             PowerGroup(a, n ∈ ℤ)
//
// The interfaces nest, so the compiler decides which power routine a value can
// be passed to: a bare BinaryOp is only a Semigroup, NewMonoid and NewGroup
// attach the identity and the inverse.
//
// Associativity, identity and inverse laws are caller contracts and are never
// checked. Exponent preconditions are: every violation is reported as an
// apperrors.ValidationError wrapping one of the apperrors precondition
// sentinels.
//
// All routines are pure. They run on the caller's goroutine and never block.
package algebra
