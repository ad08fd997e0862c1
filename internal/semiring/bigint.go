package semiring

import "math/big"

// BigInt returns the ordinary semiring over arbitrary-precision integers.
// Add and Mul allocate a fresh result and never modify their operands, so
// entries may be shared between matrices.
func BigInt() Semiring[*big.Int] {
	return Semiring[*big.Int]{
		Name: "bigint",
		Add:  func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
		Zero: big.NewInt(0),
		Mul:  func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
		One:  big.NewInt(1),
	}
}
