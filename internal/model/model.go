// Package model defines the domain models for Nudge.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixActivity = "activity"
	PrefixLog      = "log"
	KeySettings    = "settings"
	KeySession     = "session"
	KeyFlags       = "flags"
)

// SummaryActivityID is the sentinel activity id reserved for summary
// log entries. The engine never writes such entries; the constant
// exists so imported histories that contain them are filtered
// consistently by the aggregator.
const SummaryActivityID = "SUMMARY"
