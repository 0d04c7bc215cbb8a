package model

// Default prompt bounds used when no settings record exists.
const (
	DefaultMinNotifications   = 3
	DefaultMaxNotifications   = 8
	DefaultNotificationsToday = 5
)

// Settings holds the prompt scheduling configuration (singleton).
// MinNotifications and MaxNotifications are user-editable bounds;
// NotificationsToday and LastGeneratedDate are regenerated exactly
// once per calendar day by the rollover check, never edited directly.
type Settings struct {
	Key                string `json:"key"`
	MinNotifications   int    `json:"min_notifications"`
	MaxNotifications   int    `json:"max_notifications"`
	NotificationsToday int    `json:"notifications_today"`
	LastGeneratedDate  string `json:"last_generated_date"` // day key, YYYY-MM-DD
}

// SetKey sets the database key for this settings record.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this settings record.
func (s *Settings) GetKey() string {
	return s.Key
}

// SetMin updates the minimum bound, clamping the edited value so that
// 1 <= min <= max always holds.
func (s *Settings) SetMin(v int) {
	if v < 1 {
		v = 1
	}
	if v > s.MaxNotifications {
		v = s.MaxNotifications
	}
	s.MinNotifications = v
}

// SetMax updates the maximum bound, clamping the edited value so that
// 1 <= min <= max always holds.
func (s *Settings) SetMax(v int) {
	if v < 1 {
		v = 1
	}
	if v < s.MinNotifications {
		v = s.MinNotifications
	}
	s.MaxNotifications = v
}

// Normalize repairs a loaded record so the min/max invariant holds
// even if the stored value predates clamping or was edited by hand.
func (s *Settings) Normalize() {
	if s.MinNotifications < 1 {
		s.MinNotifications = 1
	}
	if s.MaxNotifications < s.MinNotifications {
		s.MaxNotifications = s.MinNotifications
	}
	if s.NotificationsToday < 0 {
		s.NotificationsToday = 0
	}
}

// NewSettings creates a settings record with the documented defaults,
// dated to the given day key.
func NewSettings(today string) *Settings {
	return &Settings{
		Key:                KeySettings,
		MinNotifications:   DefaultMinNotifications,
		MaxNotifications:   DefaultMaxNotifications,
		NotificationsToday: DefaultNotificationsToday,
		LastGeneratedDate:  today,
	}
}
