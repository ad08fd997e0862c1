package fibonacci

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/agbru/powkit/internal/algebra"
	apperrors "github.com/agbru/powkit/internal/errors"
)

// knownFibResults is the reference oracle for every calculator.
var knownFibResults = []struct {
	n      uint64
	result string
}{
	{0, "0"}, {1, "1"}, {2, "1"}, {10, "55"}, {20, "6765"},
	{30, "832040"},
	{40, "102334155"},
	{50, "12586269025"},
	{64, "10610209857723"},
	{92, "7540113804746346429"},
	{93, "12200160415121876738"},
	{94, "19740274219868223167"},
	{100, "354224848179261915075"},
	{128, "251728825683549488150424261"},
	{256, "141693817714056513234709965875411919657707794958199867"},
}

func allCalculators() map[string]Calculator {
	return NewDefaultFactory().GetAll()
}

func TestFibonacciCalculators(t *testing.T) {
	ctx := context.Background()
	for name, calc := range allCalculators() {
		calc := calc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, tc := range knownFibResults {
				t.Run(fmt.Sprintf("N=%d", tc.n), func(t *testing.T) {
					expected, _ := new(big.Int).SetString(tc.result, 10)
					result, err := calc.Calculate(ctx, nil, 0, tc.n, Options{})
					if err != nil {
						t.Fatalf("Unexpected error: %v", err)
					}
					if result.Cmp(expected) != 0 {
						t.Errorf("Incorrect result.\nExpected: %s\nGot: %s", expected, result)
					}
				})
			}
		})
	}
}

func TestFibonacciFirstTen(t *testing.T) {
	t.Parallel()
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	for n, w := range want {
		got, err := Fibonacci(uint64(n))
		if err != nil {
			t.Fatalf("Fibonacci(%d): %v", n, err)
		}
		if got.Int64() != w {
			t.Errorf("Fibonacci(%d) = %s, want %d", n, got, w)
		}
	}
}

func TestFibonacciMatchesBaselines(t *testing.T) {
	t.Parallel()
	for n := uint64(0); n <= 30; n++ {
		fast, err := Fibonacci(n)
		if err != nil {
			t.Fatalf("Fibonacci(%d): %v", n, err)
		}
		if lin := Linear(n); fast.Cmp(lin) != 0 {
			t.Fatalf("n=%d: Fibonacci=%s Linear=%s", n, fast, lin)
		}
		naive, err := Naive(n)
		if err != nil {
			t.Fatalf("Naive(%d): %v", n, err)
		}
		if fast.Uint64() != naive {
			t.Fatalf("n=%d: Fibonacci=%s Naive=%d", n, fast, naive)
		}
	}
}

func TestNaiveLimit(t *testing.T) {
	t.Parallel()
	if _, err := Naive(MaxNaiveIndex + 1); !apperrors.IsInvalidArgument(err) {
		t.Errorf("Naive(%d) error = %v, want invalid argument", MaxNaiveIndex+1, err)
	}
}

func TestCombineVectors(t *testing.T) {
	t.Parallel()
	a := Vector{big.NewInt(1), big.NewInt(0)}
	b := Vector{big.NewInt(1), big.NewInt(1)}
	got := CombineVectors(a, b)
	if got[0].Int64() != 2 || got[1].Int64() != 1 {
		t.Errorf("CombineVectors([1 0], [1 1]) = [%s %s], want [2 1]", got[0], got[1])
	}
	if a[0].Int64() != 1 || b[1].Int64() != 1 {
		t.Error("operands were modified")
	}
}

func TestVectorMatrix(t *testing.T) {
	t.Parallel()
	// Bottom row of Q^3 = [[3, 2], [2, 1]].
	m := Vector{big.NewInt(2), big.NewInt(1)}.Matrix()
	want := [2][2]int64{{3, 2}, {2, 1}}
	for i := range want {
		for j := range want[i] {
			if m[i][j].Int64() != want[i][j] {
				t.Errorf("m[%d][%d] = %s, want %d", i, j, m[i][j], want[i][j])
			}
		}
	}
}

func TestTwoByTwoProducts(t *testing.T) {
	t.Parallel()
	q2 := Matrix2{{big.NewInt(2), big.NewInt(1)}, {big.NewInt(1), big.NewInt(1)}}
	want := [2][2]int64{{3, 2}, {2, 1}}
	for name, product := range map[string]Matrix2{
		"Multiply2x2":               Multiply2x2(Q(), q2),
		"MultiplyFibonacciMatrices": MultiplyFibonacciMatrices(Q(), q2),
	} {
		for i := range want {
			for j := range want[i] {
				if product[i][j].Int64() != want[i][j] {
					t.Errorf("%s: [%d][%d] = %s, want %d", name, i, j, product[i][j], want[i][j])
				}
			}
		}
	}
}

func TestVectorPowerOperationCount(t *testing.T) {
	t.Parallel()
	for _, n := range []uint64{1, 2, 7, 59, 100, 1023, 1024} {
		calls := 0
		s := algebra.Instrumented[Vector]{Semigroup: VectorSemigroup, OnCombine: func() { calls++ }}
		if _, err := fibonacciWith(n, s); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if want := algebra.MinOperations(int(n)); calls != want {
			t.Errorf("n=%d: %d products, want %d", n, calls, want)
		}
	}
}

func TestProgressReachesCompletion(t *testing.T) {
	t.Parallel()
	for name, calc := range allCalculators() {
		calc := calc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			progressChan := make(chan ProgressUpdate, 1024)
			if _, err := calc.Calculate(context.Background(), progressChan, 3, 5000, Options{ProgressStep: 0.05}); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			close(progressChan)

			last := -1.0
			count := 0
			for update := range progressChan {
				if update.CalculatorIndex != 3 {
					t.Errorf("update for calculator %d, want 3", update.CalculatorIndex)
				}
				if update.Value < last {
					t.Errorf("progress went backwards: %f after %f", update.Value, last)
				}
				last = update.Value
				count++
			}
			if count == 0 || last != 1.0 {
				t.Errorf("got %d updates ending at %f, want final 1.0", count, last)
			}
		})
	}
}

func TestCalculateCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, calc := range allCalculators() {
		_, err := calc.Calculate(ctx, nil, 0, 1000, Options{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", name, err)
		}
	}
}

func TestLinearHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&LinearIteration{}).CalculateCore(ctx, nil, 3*cancelCheckInterval, Options{ProgressStep: DefaultProgressStep})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNormalizeOptions(t *testing.T) {
	t.Parallel()
	tests := map[float64]float64{0: DefaultProgressStep, -1: DefaultProgressStep, 2: DefaultProgressStep, 0.25: 0.25}
	for in, want := range tests {
		if got := normalizeOptions(Options{ProgressStep: in}).ProgressStep; got != want {
			t.Errorf("normalizeOptions(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestNewCalculatorPanicsOnNil(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil core")
		}
	}()
	NewCalculator(nil)
}
