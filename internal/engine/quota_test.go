package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNextQuotaRange(t *testing.T) {
	rng := testRand()

	cases := []struct{ min, max int }{
		{1, 1},
		{1, 5},
		{3, 8},
		{10, 10},
	}
	for _, tc := range cases {
		for i := 0; i < 500; i++ {
			q := nextQuota(rng, tc.min, tc.max)
			assert.GreaterOrEqual(t, q, tc.min)
			assert.LessOrEqual(t, q, tc.max)
		}
	}
}

func TestNextQuotaDegenerateInterval(t *testing.T) {
	rng := testRand()

	for i := 0; i < 100; i++ {
		assert.Equal(t, 4, nextQuota(rng, 4, 4))
	}
}

func TestNextQuotaRepairsBounds(t *testing.T) {
	rng := testRand()

	// Inverted bounds collapse to min.
	assert.Equal(t, 6, nextQuota(rng, 6, 2))
	// Non-positive bounds are raised to 1.
	assert.Equal(t, 1, nextQuota(rng, -3, 0))
}

func TestNextQuotaRoughlyUniform(t *testing.T) {
	rng := testRand()

	const samples = 4000
	counts := make(map[int]int)
	for i := 0; i < samples; i++ {
		counts[nextQuota(rng, 2, 5)]++
	}

	// Four buckets, expected 1000 each; allow a wide band.
	assert.Len(t, counts, 4)
	for v := 2; v <= 5; v++ {
		assert.Greater(t, counts[v], 800, "value %d under-sampled", v)
		assert.Less(t, counts[v], 1200, "value %d over-sampled", v)
	}
}
