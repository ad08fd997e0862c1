package semiring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/semiring"
)

var fib = semiring.Matrix[int]{{1, 1}, {1, 0}}

func TestPowerOrdinary(t *testing.T) {
	t.Parallel()
	s := semiring.Ordinary[int]()
	tests := []struct {
		n    int
		want semiring.Matrix[int]
	}{
		{0, semiring.Matrix[int]{{1, 0}, {0, 1}}},
		{1, semiring.Matrix[int]{{1, 1}, {1, 0}}},
		{2, semiring.Matrix[int]{{2, 1}, {1, 1}}},
		{3, semiring.Matrix[int]{{3, 2}, {2, 1}}},
		{10, semiring.Matrix[int]{{89, 55}, {55, 34}}},
	}
	for _, tt := range tests {
		got, err := semiring.Power(fib, tt.n, s)
		require.NoError(t, err)
		assert.True(t, semiring.Equal(tt.want, got), "n=%d: got %v", tt.n, got)
	}
}

func TestPowerDoesNotAlias(t *testing.T) {
	t.Parallel()
	a := semiring.Matrix[int]{{1, 2}, {3, 4}}
	got, err := semiring.Power(a, 1, semiring.Ordinary[int]())
	require.NoError(t, err)
	got[0][0] = 99
	assert.Equal(t, 1, a[0][0], "input mutated through result")

	id, err := semiring.Power(a, 0, semiring.Ordinary[int]())
	require.NoError(t, err)
	id[0][0] = 7
	again, err := semiring.Power(a, 0, semiring.Ordinary[int]())
	require.NoError(t, err)
	assert.Equal(t, 1, again[0][0], "identity shared between calls")
}

func TestIdentityLaw(t *testing.T) {
	t.Parallel()
	s := semiring.Ordinary[int]()
	a := semiring.Matrix[int]{{2, -1, 0}, {4, 5, 6}, {-7, 8, 9}}
	id := semiring.Identity(3, s)

	left, err := semiring.Multiply(id, a, s)
	require.NoError(t, err)
	right, err := semiring.Multiply(a, id, s)
	require.NoError(t, err)
	assert.True(t, semiring.Equal(a, left))
	assert.True(t, semiring.Equal(a, right))
}

func TestMultiplyValidation(t *testing.T) {
	t.Parallel()
	s := semiring.Ordinary[int]()
	square := semiring.Matrix[int]{{1, 2}, {3, 4}}
	tests := []struct {
		name string
		a, b semiring.Matrix[int]
		want error
	}{
		{"EmptyLeft", semiring.Matrix[int]{}, square, apperrors.ErrEmptyMatrix},
		{"EmptyRight", square, nil, apperrors.ErrEmptyMatrix},
		{"Ragged", semiring.Matrix[int]{{1, 2}, {3}}, square, apperrors.ErrNotSquare},
		{"Rectangular", square, semiring.Matrix[int]{{1, 2, 3}, {4, 5, 6}}, apperrors.ErrNotSquare},
		{"Mismatch", square, semiring.Matrix[int]{{1}}, apperrors.ErrDimensionMismatch},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := semiring.Multiply(tt.a, tt.b, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, apperrors.IsInvalidArgument(err))
		})
	}
}

func TestPowerValidation(t *testing.T) {
	t.Parallel()
	s := semiring.Ordinary[int]()

	_, err := semiring.Power(fib, -1, s)
	assert.ErrorIs(t, err, apperrors.ErrNegativeExponent)

	_, err = semiring.Power(semiring.Matrix[int]{{1, 2}}, 2, s)
	assert.ErrorIs(t, err, apperrors.ErrNotSquare)

	_, err = semiring.Power(nil, 0, s)
	assert.ErrorIs(t, err, apperrors.ErrEmptyMatrix)
}

func TestCloneAndDim(t *testing.T) {
	t.Parallel()
	a := semiring.Matrix[int]{{1, 2}, {3, 4}}
	b := a.Clone()
	b[1][1] = 0
	assert.Equal(t, 4, a[1][1])
	assert.Equal(t, 2, b.Dim())
	assert.False(t, semiring.Equal(a, b))
	assert.False(t, semiring.Equal(a, semiring.Matrix[int]{{1, 2}}))
}

func TestBooleanPower(t *testing.T) {
	t.Parallel()
	// 0 → 1 → 2, no way back.
	adj := semiring.Matrix[bool]{
		{true, true, false},
		{false, true, true},
		{false, false, true},
	}
	got, err := semiring.Power(adj, 2, semiring.Boolean())
	require.NoError(t, err)
	want := semiring.Matrix[bool]{
		{true, true, true},
		{false, true, true},
		{false, false, true},
	}
	assert.True(t, semiring.Equal(want, got), "got %v", got)
}
