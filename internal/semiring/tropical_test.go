package semiring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/powkit/internal/semiring"
)

func TestTropicalLaws(t *testing.T) {
	t.Parallel()
	s := semiring.Tropical()
	inf := semiring.Inf

	assert.True(t, math.IsInf(s.Mul(inf, 3), 1), "∞ + x must stay ∞")
	assert.True(t, math.IsInf(s.Mul(-4, inf), 1), "x + ∞ must stay ∞")
	assert.Equal(t, 3.0, s.Add(inf, 3))
	assert.Equal(t, 3.0, s.Add(3, inf))
	assert.Equal(t, 5.0, s.Mul(5, s.One))
	assert.Equal(t, -2.0, s.Add(-2, 7))
}

func TestTropicalMultiplyTriangle(t *testing.T) {
	t.Parallel()
	inf := semiring.Inf
	g := semiring.Matrix[semiring.Weight]{
		{0, 1, 5},
		{inf, 0, 1},
		{inf, inf, 0},
	}
	got, err := semiring.TropicalMultiply(g, g)
	require.NoError(t, err)

	want := semiring.Matrix[semiring.Weight]{
		{0, 1, 2},
		{inf, 0, 1},
		{inf, inf, 0},
	}
	assert.True(t, semiring.Equal(want, got), "got %v", got)
}

func TestTropicalIdentity(t *testing.T) {
	t.Parallel()
	id := semiring.Identity(2, semiring.Tropical())
	assert.Equal(t, 0.0, id[0][0])
	assert.True(t, math.IsInf(id[0][1], 1))
	assert.True(t, math.IsInf(id[1][0], 1))
	assert.Equal(t, 0.0, id[1][1])
}
