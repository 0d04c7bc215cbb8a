package engine

import (
	"math"
	"time"

	"github.com/nudge-cli/nudge/internal/model"
)

// Stats aggregates pass/fail counts over a window of log entries.
type Stats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ComputeStats tallies answered prompts. Summary rows are excluded.
// A nil windowStart includes all entries; otherwise only entries
// strictly after windowStart count. The percentage rounds half up.
func ComputeStats(entries []*model.LogEntry, windowStart *time.Time) Stats {
	var stats Stats
	for _, entry := range entries {
		if entry.IsSummaryEntry() {
			continue
		}
		if windowStart != nil && !entry.Timestamp.After(*windowStart) {
			continue
		}
		stats.Total++
		if entry.Completed {
			stats.Completed++
		}
	}

	if stats.Total > 0 {
		stats.Percentage = int(math.Floor(float64(stats.Completed)/float64(stats.Total)*100 + 0.5))
	}
	return stats
}
