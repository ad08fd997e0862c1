package semiring

import (
	"fmt"

	"github.com/agbru/powkit/internal/algebra"
	apperrors "github.com/agbru/powkit/internal/errors"
)

// Matrix is a square matrix stored as rows. Values returned by this package
// are freshly allocated and never alias their inputs.
type Matrix[T any] [][]T

// Dim returns the number of rows.
func (m Matrix[T]) Dim() int { return len(m) }

// Clone returns a deep copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	out := make(Matrix[T], len(m))
	for i, row := range m {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// Validate reports ErrEmptyMatrix for a matrix without rows and ErrNotSquare
// when any row length differs from the row count.
func (m Matrix[T]) Validate() error {
	if len(m) == 0 {
		return apperrors.NewValidationError(apperrors.ErrEmptyMatrix, "matrix", "", nil)
	}
	for i, row := range m {
		if len(row) != len(m) {
			return apperrors.NewValidationError(apperrors.ErrNotSquare, "matrix",
				fmt.Sprintf("row %d has %d columns, want %d", i, len(row), len(m)), nil)
		}
	}
	return nil
}

// Equal reports whether a and b have the same shape and equal entries.
func Equal[T comparable](a, b Matrix[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// newFilled allocates a k×k matrix with every entry set to v.
func newFilled[T any](k int, v T) Matrix[T] {
	cells := make([]T, k*k)
	for i := range cells {
		cells[i] = v
	}
	m := make(Matrix[T], k)
	for i := range m {
		m[i] = cells[i*k : (i+1)*k : (i+1)*k]
	}
	return m
}

// Identity returns the k×k identity matrix of s: One on the diagonal, Zero
// elsewhere.
func Identity[T any](k int, s Semiring[T]) Matrix[T] {
	m := newFilled(k, s.Zero)
	for i := 0; i < k; i++ {
		m[i][i] = s.One
	}
	return m
}

// Multiply returns the semiring product a·b, where
//
//	(a·b)[i][j] = Add-reduction over l of Mul(a[i][l], b[l][j]), seeded with Zero.
//
// Both operands must be square, non-empty and of the same dimension.
// Complexity: O(k³) applications of Mul and Add.
func Multiply[T any](a, b Matrix[T], s Semiring[T]) (Matrix[T], error) {
	if err := a.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "multiply: left operand")
	}
	if err := b.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "multiply: right operand")
	}
	if len(a) != len(b) {
		return nil, apperrors.NewValidationError(apperrors.ErrDimensionMismatch, "b",
			fmt.Sprintf("%dx%d by %dx%d", len(a), len(a), len(b), len(b)), nil)
	}
	return multiply(a, b, s), nil
}

// multiply assumes validated operands of equal dimension.
func multiply[T any](a, b Matrix[T], s Semiring[T]) Matrix[T] {
	k := len(a)
	result := newFilled(k, s.Zero)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			acc := s.Zero
			for l := 0; l < k; l++ {
				acc = s.Add(acc, s.Mul(a[i][l], b[l][j]))
			}
			result[i][j] = acc
		}
	}
	return result
}

// matrixMonoid is the multiplicative monoid of k×k matrices over a semiring.
type matrixMonoid[T any] struct {
	s        Semiring[T]
	identity Matrix[T]
}

func (m matrixMonoid[T]) Combine(a, b Matrix[T]) Matrix[T] { return multiply(a, b, m.s) }

// Identity returns a copy so that callers never share the cached matrix.
func (m matrixMonoid[T]) Identity() Matrix[T] { return m.identity.Clone() }

// MatrixMonoid returns the monoid of k×k matrices under Multiply, with the
// semiring identity matrix as its identity. Combine does not validate its
// operands; they must be k×k.
func (s Semiring[T]) MatrixMonoid(k int) algebra.Monoid[Matrix[T]] {
	return matrixMonoid[T]{s: s, identity: Identity(k, s)}
}

// Power returns a raised to the n-th power under s. Power(a, 0) is the
// identity matrix whatever a holds.
//
// Parameters:
//   - a: A non-empty square matrix.
//   - n: The exponent; must be >= 0.
//   - s: The semiring.
//
// Returns:
//   - Matrix[T]: A freshly allocated matrix.
//   - error: A validation error for a malformed matrix or a negative exponent.
func Power[T any](a Matrix[T], n int, s Semiring[T]) (Matrix[T], error) {
	if err := a.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "power")
	}
	result, err := algebra.PowerMonoid(a, n, s.MatrixMonoid(len(a)))
	if err != nil {
		return nil, apperrors.WrapError(err, "power")
	}
	if n == 1 {
		// PowerSemigroup returns its operand unchanged for n == 1.
		return result.Clone(), nil
	}
	return result, nil
}
