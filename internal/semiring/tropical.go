package semiring

import "math"

// Weight is an edge weight or path length. Inf marks an absent edge.
type Weight = float64

// Inf is the tropical zero: no path.
var Inf = math.Inf(1)

// Tropical returns the (min, +) semiring over Weight with Zero = +∞ and
// One = 0. Matrix powers under it compose shortest paths.
func Tropical() Semiring[Weight] {
	return Semiring[Weight]{
		Name: "tropical",
		Add:  math.Min,
		Zero: Inf,
		Mul:  func(a, b Weight) Weight { return a + b },
		One:  0,
	}
}

// TropicalMultiply returns the min-plus product of a and b: entry (i, j) is
// the shortest i→j path that takes one step in a followed by one step in b.
func TropicalMultiply(a, b Matrix[Weight]) (Matrix[Weight], error) {
	return Multiply(a, b, Tropical())
}
