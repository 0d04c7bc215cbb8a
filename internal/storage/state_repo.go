package storage

import (
	"github.com/nudge-cli/nudge/internal/logging"
	"github.com/nudge-cli/nudge/internal/model"
)

// StateRepo provides access to the singleton records: settings,
// session, and flags. A missing or corrupt record yields that record's
// documented default; unrelated records are never touched. Read
// failures are never surfaced to callers, so the state machine always
// has something valid to resume from.
type StateRepo struct {
	db *DB
}

// NewStateRepo creates a new state repository.
func NewStateRepo(db *DB) *StateRepo {
	return &StateRepo{db: db}
}

// Settings retrieves the settings record, substituting defaults dated
// to today when the record is missing or unreadable. The result is
// normalized so the min/max invariant always holds.
func (r *StateRepo) Settings(today string) *model.Settings {
	settings := &model.Settings{}
	err := r.db.Get(model.KeySettings, settings)
	if err == nil {
		settings.Normalize()
		return settings
	}

	if !IsErrKeyNotFound(err) {
		logging.Warn("settings record unreadable, using defaults", logging.KeyError, err)
	}
	return model.NewSettings(today)
}

// Session retrieves the session record, substituting an idle session
// when the record is missing or unreadable.
func (r *StateRepo) Session() *model.Session {
	session := &model.Session{}
	err := r.db.Get(model.KeySession, session)
	if err == nil {
		session.Normalize()
		return session
	}

	if !IsErrKeyNotFound(err) {
		logging.Warn("session record unreadable, using defaults", logging.KeyError, err)
	}
	return model.NewSession()
}

// Flags retrieves the flags record, substituting unset flags when the
// record is missing or unreadable.
func (r *StateRepo) Flags() *model.Flags {
	flags := &model.Flags{}
	err := r.db.Get(model.KeyFlags, flags)
	if err == nil {
		return flags
	}

	if !IsErrKeyNotFound(err) {
		logging.Warn("flags record unreadable, using defaults", logging.KeyError, err)
	}
	return model.NewFlags()
}
