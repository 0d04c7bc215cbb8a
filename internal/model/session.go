package model

// PromptState is the current state of the prompt state machine.
type PromptState string

const (
	// StateIdle means no prompt or summary is active.
	StateIdle PromptState = "idle"
	// StatePrompting means one activity is awaiting a yes/no answer.
	StatePrompting PromptState = "prompting"
	// StateSummary means the day's quota is exhausted and the summary
	// awaits dismissal.
	StateSummary PromptState = "summary"
)

// Session holds the prompt state machine (singleton). Activity is
// non-nil if and only if State is StatePrompting; the prompting and
// summary sub-states are mutually exclusive by construction.
// LastActivityID survives day rollovers.
type Session struct {
	Key            string      `json:"key"`
	State          PromptState `json:"state"`
	Activity       *Activity   `json:"activity,omitempty"`
	LastActivityID string      `json:"last_activity_id,omitempty"`
}

// SetKey sets the database key for this session record.
func (s *Session) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this session record.
func (s *Session) GetKey() string {
	return s.Key
}

// IsPrompting returns true if an activity is awaiting an answer.
func (s *Session) IsPrompting() bool {
	return s.State == StatePrompting && s.Activity != nil
}

// IsSummaryPending returns true if the summary awaits dismissal.
func (s *Session) IsSummaryPending() bool {
	return s.State == StateSummary
}

// Prompt moves the session into the prompting state for the activity.
func (s *Session) Prompt(activity *Activity) {
	s.State = StatePrompting
	s.Activity = activity
}

// Reset returns the session to idle, keeping LastActivityID.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Activity = nil
}

// Normalize repairs a loaded record so the state/activity pairing
// invariant holds even if the stored value was corrupted.
func (s *Session) Normalize() {
	switch s.State {
	case StatePrompting:
		if s.Activity == nil {
			s.State = StateIdle
		}
	case StateIdle, StateSummary:
		s.Activity = nil
	default:
		s.State = StateIdle
		s.Activity = nil
	}
}

// NewSession creates an idle session record.
func NewSession() *Session {
	return &Session{
		Key:   KeySession,
		State: StateIdle,
	}
}
