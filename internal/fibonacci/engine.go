package fibonacci

import (
	"math"
	"math/big"

	"github.com/agbru/powkit/internal/algebra"
	apperrors "github.com/agbru/powkit/internal/errors"
)

// Vector is the bottom row of a Fibonacci matrix
//
//	[ 1 1 ]^p   [ F(p+1) F(p)   ]
//	[ 1 0 ]   = [ F(p)   F(p-1) ]
//
// that is {F(p), F(p-1)}. The top row follows from the bottom one, so two
// numbers carry the whole matrix.
type Vector [2]*big.Int

// Matrix recovers the full Fibonacci matrix represented by v.
func (v Vector) Matrix() Matrix2 {
	return Matrix2{
		{new(big.Int).Add(v[0], v[1]), new(big.Int).Set(v[0])},
		{new(big.Int).Set(v[0]), new(big.Int).Set(v[1])},
	}
}

// CombineVectors multiplies the Fibonacci matrices represented by a and b and
// returns the bottom row of the product:
//
//	[a0·(b1+b0) + a1·b0, a0·b0 + a1·b1]
//
// The operands are not modified.
func CombineVectors(a, b Vector) Vector {
	t := new(big.Int).Add(b[1], b[0])
	first := t.Mul(a[0], t)
	first.Add(first, new(big.Int).Mul(a[1], b[0]))

	second := new(big.Int).Mul(a[0], b[0])
	second.Add(second, new(big.Int).Mul(a[1], b[1]))
	return Vector{first, second}
}

// VectorSemigroup is matrix multiplication restricted to Fibonacci vectors.
var VectorSemigroup = algebra.BinaryOp[Vector](CombineVectors)

// generator is the vector of [[1,1],[1,0]] itself: {F(1), F(0)}.
func generator() Vector { return Vector{big.NewInt(1), big.NewInt(0)} }

// Fibonacci returns F(n) with F(0) = 0 and F(1) = 1 in O(log n) vector
// products.
//
// Returns:
//   - *big.Int: The n-th Fibonacci number.
//   - error: ErrExponentOverflow when n does not fit in an int.
func Fibonacci(n uint64) (*big.Int, error) {
	return fibonacciWith(n, VectorSemigroup)
}

func fibonacciWith(n uint64, s algebra.Semigroup[Vector]) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(0), nil
	}
	if n > math.MaxInt {
		return nil, apperrors.NewValidationError(apperrors.ErrExponentOverflow, "n", "", n)
	}
	v, err := algebra.PowerSemigroup(generator(), int(n), s)
	if err != nil {
		return nil, err
	}
	return v[0], nil
}
