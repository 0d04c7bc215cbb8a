package model

import (
	"fmt"
	"time"
)

// LogEntry records one answered prompt. Entries are append-only; the
// engine never mutates or deletes them. ActivityText is a snapshot so
// deleting the source activity later does not corrupt history.
type LogEntry struct {
	Key          string    `json:"key"`
	ID           string    `json:"id"`
	ActivityID   string    `json:"activity_id"`
	ActivityText string    `json:"activity_text"`
	Timestamp    time.Time `json:"timestamp"`
	Completed    bool      `json:"completed"`
	IsSummary    bool      `json:"is_summary,omitempty"`
}

// SetKey sets the database key for this log entry.
func (l *LogEntry) SetKey(key string) {
	l.Key = key
}

// GetKey returns the database key for this log entry.
func (l *LogEntry) GetKey() string {
	return l.Key
}

// IsSummaryEntry reports whether this entry is a summary record rather
// than an answered prompt.
func (l *LogEntry) IsSummaryEntry() bool {
	return l.IsSummary || l.ActivityID == SummaryActivityID
}

// GenerateLogKey generates a database key for a log entry using UUID.
func GenerateLogKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixLog, uuid)
}

// NewLogEntry creates a log entry snapshotting the prompted activity.
func NewLogEntry(id string, activity *Activity, timestamp time.Time, completed bool) *LogEntry {
	return &LogEntry{
		Key:          GenerateLogKey(id),
		ID:           id,
		ActivityID:   activity.ID,
		ActivityText: activity.Text,
		Timestamp:    timestamp,
		Completed:    completed,
	}
}
