package algebra

import "math/bits"

// Half returns ⌊n/2⌋ for n ≥ 0.
func Half(n int) int {
	return n >> 1
}

// Odd reports whether the least-significant bit of n is set.
func Odd(n int) bool {
	return n&1 == 1
}

// Even is the complement of Odd.
func Even(n int) bool {
	return n&1 == 0
}

// MinOperations returns the number of operator applications PowerSemigroup
// performs for exponent n: ⌊log2 n⌋ + popcount(n) − 1. It returns 0 for n < 1.
func MinOperations(n int) int {
	if n < 1 {
		return 0
	}
	u := uint(n)
	return bits.Len(u) - 1 + bits.OnesCount(u) - 1
}
