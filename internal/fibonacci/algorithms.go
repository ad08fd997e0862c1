package fibonacci

import (
	"context"
	"math"
	"math/big"

	"github.com/agbru/powkit/internal/algebra"
	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/semiring"
)

// exponent converts n to the int exponent the power routines take.
func exponent(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, apperrors.NewValidationError(apperrors.ErrExponentOverflow, "n", "", n)
	}
	return int(n), nil
}

// VectorPower is the production engine: binary exponentiation of the
// two-number Fibonacci vector. Each step costs four big multiplications.
type VectorPower struct{}

// Name implements coreCalculator.
func (c *VectorPower) Name() string { return "vector" }

// Description implements coreCalculator.
func (c *VectorPower) Description() string {
	return "Vector power (O(log n), bottom-row product)"
}

// CalculateCore implements coreCalculator.
func (c *VectorPower) CalculateCore(_ context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	e, err := exponent(n)
	if err != nil {
		return nil, err
	}
	counter := newStepCounter(reporter, algebra.MinOperations(e), opts.ProgressStep)
	result, err := fibonacciWith(n, algebra.Instrumented[Vector]{Semigroup: VectorSemigroup, OnCombine: counter.Tick})
	recordApplications(c.Name(), counter.Done())
	return result, err
}

// MatrixPower raises [[1, 1], [1, 0]] through the generic semiring matrix
// code over big integers. It makes eight scalar multiplications per matrix
// product and reports progress per scalar multiplication.
type MatrixPower struct{}

// Name implements coreCalculator.
func (c *MatrixPower) Name() string { return "matrix" }

// Description implements coreCalculator.
func (c *MatrixPower) Description() string {
	return "Semiring matrix power (O(log n), generic k×k product)"
}

// CalculateCore implements coreCalculator.
func (c *MatrixPower) CalculateCore(_ context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	e, err := exponent(n)
	if err != nil {
		return nil, err
	}
	s := semiring.BigInt()
	counter := newStepCounter(reporter, 8*algebra.MinOperations(e), opts.ProgressStep)
	s.Mul = algebra.Instrumented[*big.Int]{Semigroup: s.Mul, OnCombine: counter.Tick}.Combine

	q := semiring.Matrix[*big.Int]{
		{big.NewInt(1), big.NewInt(1)},
		{big.NewInt(1), big.NewInt(0)},
	}
	p, err := semiring.Power(q, e, s)
	if err != nil {
		return nil, err
	}
	recordApplications(c.Name(), counter.Done()/8)
	return p[0][1], nil
}

// FibonacciMatrixPower raises Q with MultiplyFibonacciMatrices, which only
// computes the bottom row of each product.
type FibonacciMatrixPower struct{}

// Name implements coreCalculator.
func (c *FibonacciMatrixPower) Name() string { return "fibmatrix" }

// Description implements coreCalculator.
func (c *FibonacciMatrixPower) Description() string {
	return "Fibonacci matrix power (O(log n), unrolled 2×2 product)"
}

// CalculateCore implements coreCalculator.
func (c *FibonacciMatrixPower) CalculateCore(_ context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(0), nil
	}
	e, err := exponent(n)
	if err != nil {
		return nil, err
	}
	counter := newStepCounter(reporter, algebra.MinOperations(e), opts.ProgressStep)
	s := algebra.Instrumented[Matrix2]{
		Semigroup: algebra.BinaryOp[Matrix2](MultiplyFibonacciMatrices),
		OnCombine: counter.Tick,
	}
	p, err := algebra.PowerSemigroup(Q(), e, s)
	if err != nil {
		return nil, err
	}
	recordApplications(c.Name(), counter.Done())
	return p[0][1], nil
}

// cancelCheckInterval is how many additions LinearIteration performs
// between two context checks.
const cancelCheckInterval = 1 << 12

// LinearIteration iterates the recurrence. It is the O(n) reference the
// logarithmic calculators are compared against.
type LinearIteration struct{}

// Name implements coreCalculator.
func (c *LinearIteration) Name() string { return "linear" }

// Description implements coreCalculator.
func (c *LinearIteration) Description() string {
	return "Linear iteration (O(n), reference)"
}

// CalculateCore implements coreCalculator.
func (c *LinearIteration) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	if n == 0 {
		return big.NewInt(0), nil
	}
	total := n - 1
	if total > math.MaxInt {
		total = math.MaxInt
	}
	counter := newStepCounter(reporter, int(total), opts.ProgressStep)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := uint64(1); i < n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		a.Add(a, b)
		a, b = b, a
		counter.Tick()
	}
	recordApplications(c.Name(), counter.Done())
	return b, nil
}
