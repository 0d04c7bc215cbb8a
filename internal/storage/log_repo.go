package storage

import (
	"sort"

	"github.com/nudge-cli/nudge/internal/clock"
	"github.com/nudge-cli/nudge/internal/model"
)

// LogRepo provides read access to the append-only prompt log. Writes
// go through the engine's transactional commit.
type LogRepo struct {
	db *DB
}

// NewLogRepo creates a new log repository.
func NewLogRepo(db *DB) *LogRepo {
	return &LogRepo{db: db}
}

// List returns all log entries ordered by timestamp.
func (r *LogRepo) List() ([]*model.LogEntry, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixLog+":", func() *model.LogEntry {
		return &model.LogEntry{}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

// CountDay returns the number of answered prompts (summary rows
// excluded) whose timestamp falls on the given day key.
func (r *LogRepo) CountDay(day string) (int, error) {
	entries, err := r.List()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsSummaryEntry() {
			continue
		}
		if clock.DayKey(entry.Timestamp) == day {
			count++
		}
	}
	return count, nil
}
