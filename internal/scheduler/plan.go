package scheduler

import (
	"math/rand/v2"
	"sort"
	"time"
)

// planTimes draws n fire instants uniformly at random in [from, until)
// and returns them sorted. Returns nil when the window is empty or n
// is not positive.
func planTimes(rng *rand.Rand, n int, from, until time.Time) []time.Time {
	if n <= 0 || !until.After(from) {
		return nil
	}

	window := until.Sub(from)
	times := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		offset := time.Duration(rng.Int64N(int64(window)))
		times = append(times, from.Add(offset))
	}

	sort.Slice(times, func(i, j int) bool {
		return times[i].Before(times[j])
	})
	return times
}
