package engine

import "math/rand/v2"

// nextQuota picks the day's prompt count uniformly from [min, max]
// inclusive. Bounds are repaired rather than rejected so a bad
// settings record can never stall quota generation.
func nextQuota(rng *rand.Rand, min, max int) int {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	if min == max {
		return min
	}
	return min + rng.IntN(max-min+1)
}
