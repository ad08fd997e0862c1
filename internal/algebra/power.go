package algebra

import (
	"math"

	apperrors "github.com/agbru/powkit/internal/errors"
)

// PowerSemigroup combines n copies of a under s using binary exponentiation.
//
// The computation has two phases. The prefix strips factors of two from n by
// squaring a; when n reaches 1 the squared value is the answer. Otherwise the
// accumulation loop folds the current square into the result for every set
// bit of the remaining exponent. The operator is applied exactly
// MinOperations(n) times, against n-1 times for linear repetition.
//
// Parameters:
//   - a: The value to exponentiate.
//   - n: The exponent; must be >= 1.
//   - s: The associative operation.
//
// Returns:
//   - T: a combined with itself n times.
//   - error: ErrNonPositiveExponent if n < 1.
func PowerSemigroup[T any](a T, n int, s Semigroup[T]) (T, error) {
	if n < 1 {
		var zero T
		return zero, apperrors.NewValidationError(apperrors.ErrNonPositiveExponent, "n", "", n)
	}
	return powerSemigroup(a, n, s), nil
}

// powerSemigroup assumes n >= 1.
func powerSemigroup[T any](a T, n int, s Semigroup[T]) T {
	for Even(n) {
		a = s.Combine(a, a)
		n = Half(n)
	}
	if n == 1 {
		return a
	}
	return powerAccumulateSemigroup(a, s.Combine(a, a), Half(n-1), s)
}

// powerAccumulateSemigroup returns result combined with a^n, for n >= 1.
func powerAccumulateSemigroup[T any](result, a T, n int, s Semigroup[T]) T {
	for {
		if Odd(n) {
			result = s.Combine(result, a)
			if n == 1 {
				return result
			}
		}
		a = s.Combine(a, a)
		n = Half(n)
	}
}

// PowerMonoid extends PowerSemigroup to n == 0, which yields m.Identity()
// regardless of a.
//
// Returns ErrNegativeExponent if n < 0.
func PowerMonoid[T any](a T, n int, m Monoid[T]) (T, error) {
	if n < 0 {
		var zero T
		return zero, apperrors.NewValidationError(apperrors.ErrNegativeExponent, "n", "", n)
	}
	if n == 0 {
		return m.Identity(), nil
	}
	return powerSemigroup(a, n, m), nil
}

// PowerGroup extends PowerMonoid to negative exponents: a^-n is computed as
// Inverse(a)^n, so PowerGroup(a, -n) == Inverse(PowerGroup(a, n)).
//
// Returns ErrExponentOverflow for math.MinInt, whose negation does not fit in
// an int.
func PowerGroup[T any](a T, n int, g Group[T]) (T, error) {
	if n == math.MinInt {
		var zero T
		return zero, apperrors.NewValidationError(apperrors.ErrExponentOverflow, "n", "", n)
	}
	if n < 0 {
		a = g.Inverse(a)
		n = -n
	}
	return PowerMonoid(a, n, g)
}
