package fibonacci

import (
	"math/big"

	apperrors "github.com/agbru/powkit/internal/errors"
)

// MaxNaiveIndex bounds Naive, whose running time doubles with every step.
const MaxNaiveIndex = 40

// Linear returns F(n) by iterating the recurrence n times.
func Linear(n uint64) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(1); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}

// Naive returns F(n) by the defining recursion. It exists as a reference for
// small indices only.
func Naive(n uint64) (uint64, error) {
	if n > MaxNaiveIndex {
		return 0, apperrors.NewValidationError(apperrors.ErrExponentOverflow, "n",
			"naive recursion is limited to n <= 40", n)
	}
	return naive(n), nil
}

func naive(n uint64) uint64 {
	if n < 2 {
		return n
	}
	return naive(n-2) + naive(n-1)
}

// Matrix2 is a 2×2 matrix of arbitrary-precision integers.
type Matrix2 [2][2]*big.Int

// Q returns the Fibonacci generator matrix [[1, 1], [1, 0]].
func Q() Matrix2 {
	return Matrix2{
		{big.NewInt(1), big.NewInt(1)},
		{big.NewInt(1), big.NewInt(0)},
	}
}

// mulAdd returns x·y + z·w.
func mulAdd(x, y, z, w *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Add(r, new(big.Int).Mul(z, w))
}

// Multiply2x2 is the unrolled product of two 2×2 matrices.
func Multiply2x2(a, b Matrix2) Matrix2 {
	return Matrix2{
		{mulAdd(a[0][0], b[0][0], a[0][1], b[1][0]), mulAdd(a[0][0], b[0][1], a[0][1], b[1][1])},
		{mulAdd(a[1][0], b[0][0], a[1][1], b[1][0]), mulAdd(a[1][0], b[0][1], a[1][1], b[1][1])},
	}
}

// MultiplyFibonacciMatrices multiplies two Fibonacci matrices. Only the
// bottom row is computed; the top row is [r10+r11, r10]. The result is only
// meaningful when both operands are powers of Q.
func MultiplyFibonacciMatrices(a, b Matrix2) Matrix2 {
	r10 := mulAdd(a[1][0], b[0][0], a[1][1], b[1][0])
	r11 := mulAdd(a[1][0], b[0][1], a[1][1], b[1][1])
	return Matrix2{
		{new(big.Int).Add(r10, r11), r10},
		{new(big.Int).Set(r10), r11},
	}
}
