//go:build gmp

// GMP-backed calculator, compiled only with -tags=gmp. It needs libgmp:
//   - Linux: sudo apt-get install libgmp-dev
//   - macOS: brew install gmp

package fibonacci

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/powkit/internal/algebra"
)

func init() {
	RegisterCalculator("gmp", func() coreCalculator { return &GMPVectorPower{} })
}

// GMPVectorPower runs the vector power engine on GMP integers.
type GMPVectorPower struct{}

// Name implements coreCalculator.
func (c *GMPVectorPower) Name() string { return "gmp" }

// Description implements coreCalculator.
func (c *GMPVectorPower) Description() string {
	return "Vector power on GMP integers (O(log n))"
}

// gmpVector mirrors Vector on gmp.Int.
type gmpVector [2]*gmp.Int

// combineGMP is CombineVectors on GMP integers. Operands are not modified.
func combineGMP(a, b gmpVector) gmpVector {
	first := new(gmp.Int).Add(b[1], b[0])
	first.Mul(a[0], first)
	first.Add(first, new(gmp.Int).Mul(a[1], b[0]))

	second := new(gmp.Int).Mul(a[0], b[0])
	second.Add(second, new(gmp.Int).Mul(a[1], b[1]))
	return gmpVector{first, second}
}

// CalculateCore implements coreCalculator.
func (c *GMPVectorPower) CalculateCore(_ context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(0), nil
	}
	e, err := exponent(n)
	if err != nil {
		return nil, err
	}
	counter := newStepCounter(reporter, algebra.MinOperations(e), opts.ProgressStep)
	s := algebra.Instrumented[gmpVector]{
		Semigroup: algebra.BinaryOp[gmpVector](combineGMP),
		OnCombine: counter.Tick,
	}
	v, err := algebra.PowerSemigroup(gmpVector{gmp.NewInt(1), gmp.NewInt(0)}, e, s)
	if err != nil {
		return nil, err
	}
	recordApplications(c.Name(), counter.Done())
	return new(big.Int).SetBytes(v[0].Bytes()), nil
}
