package algebra

import (
	"errors"
	"fmt"
	"math"
	"testing"

	apperrors "github.com/agbru/powkit/internal/errors"
)

func TestHalfAndOdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		half int
		odd  bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 1, false},
		{40, 20, false},
		{41, 20, true},
		{math.MaxInt, math.MaxInt / 2, true},
	}
	for _, tt := range tests {
		if got := Half(tt.n); got != tt.half {
			t.Errorf("Half(%d) = %d, want %d", tt.n, got, tt.half)
		}
		if got := Odd(tt.n); got != tt.odd {
			t.Errorf("Odd(%d) = %v, want %v", tt.n, got, tt.odd)
		}
		if Even(tt.n) == Odd(tt.n) {
			t.Errorf("Even(%d) must be the complement of Odd", tt.n)
		}
	}
}

func TestMinOperations(t *testing.T) {
	t.Parallel()
	tests := map[int]int{0: 0, 1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 7: 4, 8: 3, 15: 6, 16: 4, 59: 9}
	for n, want := range tests {
		if got := MinOperations(n); got != want {
			t.Errorf("MinOperations(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestPowerSemigroup(t *testing.T) {
	t.Parallel()

	t.Run("Addition", func(t *testing.T) {
		t.Parallel()
		got, err := PowerSemigroup(41, 59, Additive[int]())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2419 {
			t.Errorf("41 combined 59 times under + = %d, want 2419", got)
		}
	})

	t.Run("Multiplication", func(t *testing.T) {
		t.Parallel()
		got, err := PowerSemigroup(41, 3, Multiplicative[int]())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 68921 {
			t.Errorf("41^3 = %d, want 68921", got)
		}
	})

	t.Run("BareBinaryOp", func(t *testing.T) {
		t.Parallel()
		concat := BinaryOp[string](func(a, b string) string { return a + b })
		got, err := PowerSemigroup("ab", 5, concat)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "ababababab" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ExponentOne", func(t *testing.T) {
		t.Parallel()
		calls := 0
		s := Instrumented[int]{Semigroup: Additive[int](), OnCombine: func() { calls++ }}
		got, err := PowerSemigroup(7, 1, s)
		if err != nil || got != 7 || calls != 0 {
			t.Errorf("PowerSemigroup(7, 1) = %d, %v with %d calls", got, err, calls)
		}
	})

	for _, n := range []int{0, -1, math.MinInt} {
		n := n
		t.Run(fmt.Sprintf("Rejects n=%d", n), func(t *testing.T) {
			t.Parallel()
			_, err := PowerSemigroup(41, n, Additive[int]())
			if !errors.Is(err, apperrors.ErrNonPositiveExponent) {
				t.Errorf("expected ErrNonPositiveExponent, got %v", err)
			}
			if !apperrors.IsInvalidArgument(err) {
				t.Error("expected an invalid argument error")
			}
		})
	}
}

func TestPowerSemigroupOperationCount(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 1024; n++ {
		calls := 0
		s := Instrumented[int]{Semigroup: Additive[int](), OnCombine: func() { calls++ }}
		got, err := PowerSemigroup(3, n, s)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if got != 3*n {
			t.Fatalf("n=%d: got %d, want %d", n, got, 3*n)
		}
		if calls != MinOperations(n) {
			t.Fatalf("n=%d: %d applications, want %d", n, calls, MinOperations(n))
		}
	}
}

func TestPowerMonoid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, n int
		m    Monoid[int]
		want int
	}{
		{"Addition", 41, 59, Additive[int](), 2419},
		{"AdditionZero", 41, 0, Additive[int](), 0},
		{"MultiplicationZero", 41, 0, Multiplicative[int](), 1},
		{"MultiplicationTen", 2, 10, Multiplicative[int](), 1024},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PowerMonoid(tt.a, tt.n, tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PowerMonoid(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
			}
		})
	}

	t.Run("IdentityIgnoresOperand", func(t *testing.T) {
		t.Parallel()
		m := NewMonoid(BinaryOp[string](func(a, b string) string { return a + b }), "")
		got, err := PowerMonoid("anything", 0, m)
		if err != nil || got != "" {
			t.Errorf("PowerMonoid(_, 0) = %q, %v", got, err)
		}
	})

	t.Run("RejectsNegative", func(t *testing.T) {
		t.Parallel()
		_, err := PowerMonoid(41, -1, Additive[int]())
		if !errors.Is(err, apperrors.ErrNegativeExponent) {
			t.Errorf("expected ErrNegativeExponent, got %v", err)
		}
	})
}

func TestPowerGroup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{59, 2419},
		{-59, -2419},
		{0, 0},
		{-1, -41},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			got, err := PowerGroup(41, tt.n, Additive[int]())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PowerGroup(41, %d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}

	t.Run("MultiplicativeRationals", func(t *testing.T) {
		t.Parallel()
		g := NewGroup(BinaryOp[float64](Mul[float64]), 1, func(x float64) float64 { return 1 / x })
		got, err := PowerGroup(2.0, -3, g)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0.125 {
			t.Errorf("2^-3 = %v, want 0.125", got)
		}
	})

	t.Run("RejectsMinInt", func(t *testing.T) {
		t.Parallel()
		_, err := PowerGroup(1, math.MinInt, Additive[int]())
		if !errors.Is(err, apperrors.ErrExponentOverflow) {
			t.Errorf("expected ErrExponentOverflow, got %v", err)
		}
	})
}

func TestBaselinesAgree(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 300; n++ {
		fast, _ := PowerSemigroup(int64(7), n, Additive[int64]())
		slow, _ := Repeat(int64(7), n, Additive[int64]())
		rec, _ := PowerRecursive(int64(7), n, Additive[int64]())
		egyptian, _ := Multiply(n, int64(7), Additive[int64]())
		if fast != slow || fast != rec || fast != egyptian {
			t.Fatalf("n=%d: fast=%d slow=%d recursive=%d egyptian=%d", n, fast, slow, rec, egyptian)
		}
	}

	if _, err := Repeat(1, 0, Additive[int]()); !errors.Is(err, apperrors.ErrNonPositiveExponent) {
		t.Errorf("Repeat(_, 0) error = %v", err)
	}
	if _, err := PowerRecursive(1, 0, Additive[int]()); !errors.Is(err, apperrors.ErrNonPositiveExponent) {
		t.Errorf("PowerRecursive(_, 0) error = %v", err)
	}
}
