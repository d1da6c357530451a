package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollRange(t *testing.T) {
	t.Parallel()

	d := New(DefaultSeed, DefaultSides)
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		v := d.Roll()
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v]++
	}

	// every face should come up with a 6000-roll sample
	for face := 1; face <= 6; face++ {
		assert.Greater(t, seen[face], 700, "face %d under-represented", face)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a := New(42, 6)
	b := New(42, 6)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Roll(), b.Roll(), "roll %d diverged", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := New(1, 6)
	b := New(2, 6)
	same := true
	for i := 0; i < 50; i++ {
		if a.Roll() != b.Roll() {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestSidesFallback(t *testing.T) {
	t.Parallel()

	d := New(7, 0)
	assert.Equal(t, DefaultSides, d.Sides())
	assert.Equal(t, int64(7), d.Seed())

	d20 := New(7, 20)
	for i := 0; i < 200; i++ {
		v := d20.Roll()
		assert.True(t, v >= 1 && v <= 20)
	}
}
