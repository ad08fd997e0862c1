package algebra

import (
	apperrors "github.com/agbru/powkit/internal/errors"
)

// Repeat is the linear baseline for PowerSemigroup: it folds a into itself
// left to right, applying the operator n-1 times. It exists to cross-check
// the fast routines and to measure the number of saved applications.
func Repeat[T any](a T, n int, s Semigroup[T]) (T, error) {
	if n < 1 {
		var zero T
		return zero, apperrors.NewValidationError(apperrors.ErrNonPositiveExponent, "n", "", n)
	}
	result := a
	for i := 1; i < n; i++ {
		result = s.Combine(result, a)
	}
	return result, nil
}

// PowerRecursive is the textbook halving recursion: a^n = (a·a)^⌊n/2⌋ · a^(n mod 2).
// It makes ⌊log2 n⌋ + popcount(n) − 1 applications too, but spends O(log n)
// stack frames doing it.
func PowerRecursive[T any](a T, n int, s Semigroup[T]) (T, error) {
	if n < 1 {
		var zero T
		return zero, apperrors.NewValidationError(apperrors.ErrNonPositiveExponent, "n", "", n)
	}
	return powerRecursive(a, n, s), nil
}

func powerRecursive[T any](a T, n int, s Semigroup[T]) T {
	if n == 1 {
		return a
	}
	result := powerRecursive(s.Combine(a, a), Half(n), s)
	if Odd(n) {
		result = s.Combine(result, a)
	}
	return result
}

// Multiply is Egyptian multiplication: the n-fold sum of a under an additive
// semigroup, computed with PowerSemigroup.
func Multiply[T any](n int, a T, add Semigroup[T]) (T, error) {
	return PowerSemigroup(a, n, add)
}
