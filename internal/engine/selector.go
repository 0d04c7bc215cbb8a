package engine

import (
	"math/rand/v2"

	"github.com/nudge-cli/nudge/internal/model"
)

// selectNext picks the next activity to prompt, uniformly at random.
// When the pool has more than one element, the activity matching
// lastID is excluded so the same activity is never presented twice in
// a row while an alternative exists. A single-element pool returns its
// sole activity even if it matches lastID. Returns nil for an empty
// pool.
func selectNext(rng *rand.Rand, pool []*model.Activity, lastID string) *model.Activity {
	if len(pool) == 0 {
		return nil
	}
	if len(pool) == 1 {
		return pool[0]
	}

	candidates := pool
	if lastID != "" {
		filtered := make([]*model.Activity, 0, len(pool))
		for _, a := range pool {
			if a.ID != lastID {
				filtered = append(filtered, a)
			}
		}
		// lastID may reference a deleted activity; ignore it then.
		if len(filtered) > 0 && len(filtered) < len(pool) {
			candidates = filtered
		}
	}

	return candidates[rng.IntN(len(candidates))]
}
