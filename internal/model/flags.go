package model

// Flags holds one-shot application flags (singleton).
type Flags struct {
	Key               string `json:"key"`
	HasSeenOnboarding bool   `json:"has_seen_onboarding"`
}

// SetKey sets the database key for this flags record.
func (f *Flags) SetKey(key string) {
	f.Key = key
}

// GetKey returns the database key for this flags record.
func (f *Flags) GetKey() string {
	return f.Key
}

// NewFlags creates a flags record with all flags unset.
func NewFlags() *Flags {
	return &Flags{Key: KeyFlags}
}
