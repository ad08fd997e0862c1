package algebra

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// affine is x ↦ a·x + b over int64, composed as functions. Composition is
// associative but not commutative, which catches operand-order mistakes that
// an abelian test structure would hide.
type affine struct{ a, b int64 }

func composeAffine(f, g affine) affine {
	// (f ∘ g)(x) = f.a·(g.a·x + g.b) + f.b
	return affine{a: f.a * g.a, b: f.a*g.b + f.b}
}

// TestPowerProperties checks the laws binary exponentiation must preserve,
// against the linear baseline, on randomly generated operands.
func TestPowerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("PowerSemigroup matches linear repetition under +", prop.ForAll(
		func(a int64, n int) bool {
			fast, err := PowerSemigroup(a, n, Additive[int64]())
			if err != nil {
				return false
			}
			slow, err := Repeat(a, n, Additive[int64]())
			return err == nil && fast == slow
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.IntRange(1, 2000),
	))

	properties.Property("PowerSemigroup matches linear repetition under affine composition", prop.ForAll(
		func(a, b int64, n int) bool {
			f := affine{a: a, b: b}
			op := BinaryOp[affine](composeAffine)
			fast, err := PowerSemigroup(f, n, op)
			if err != nil {
				return false
			}
			slow, err := Repeat(f, n, op)
			return err == nil && fast == slow
		},
		gen.Int64Range(-3, 3),
		gen.Int64Range(-10, 10),
		gen.IntRange(1, 30),
	))

	properties.Property("PowerGroup(a, -n) is the inverse of PowerGroup(a, n)", prop.ForAll(
		func(a int64, n int) bool {
			pos, err := PowerGroup(a, n, Additive[int64]())
			if err != nil {
				return false
			}
			neg, err := PowerGroup(a, -n, Additive[int64]())
			return err == nil && neg == -pos
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.IntRange(0, 5000),
	))

	properties.Property("identity is neutral for PowerMonoid results", prop.ForAll(
		func(a int64, n int) bool {
			m := Multiplicative[int64]()
			p, err := PowerMonoid(a, n, m)
			if err != nil {
				return false
			}
			return m.Combine(p, m.Identity()) == p && m.Combine(m.Identity(), p) == p
		},
		gen.Int64Range(-3, 3),
		gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
