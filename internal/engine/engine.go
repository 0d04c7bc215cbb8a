// Package engine implements the daily prompt scheduling and
// activity-selection state machine.
//
// The engine owns the tri-state session (idle, prompting, summary
// pending) and consumes the user-intent events around it. Every event
// runs the day-rollover check against the currently persisted
// settings before anything else, then commits all touched records in
// one storage transaction, so a crash between events can never leave
// memory and store disagreeing.
package engine

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/nudge-cli/nudge/internal/clock"
	apperrors "github.com/nudge-cli/nudge/internal/errors"
	"github.com/nudge-cli/nudge/internal/logging"
	"github.com/nudge-cli/nudge/internal/model"
	"github.com/nudge-cli/nudge/internal/storage"
)

// Engine orchestrates the prompt state machine. All events are
// serialized through one mutex: each event, including its persistence,
// completes before the next is accepted.
type Engine struct {
	mu         sync.Mutex
	db         *storage.DB
	activities *storage.ActivityRepo
	logs       *storage.LogRepo
	state      *storage.StateRepo
	clock      clock.Clock
	rng        *rand.Rand
}

// New creates an engine over the given database, using the system
// clock and a time-seeded random source.
func New(db *storage.DB) *Engine {
	return &Engine{
		db:         db,
		activities: storage.NewActivityRepo(db),
		logs:       storage.NewLogRepo(db),
		state:      storage.NewStateRepo(db),
		clock:      clock.System(),
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}
}

// SetClock replaces the clock. Used by tests to pin the calendar day.
func (e *Engine) SetClock(c clock.Clock) {
	e.clock = c
}

// SetRand replaces the random source. Used by tests for determinism.
func (e *Engine) SetRand(r *rand.Rand) {
	e.rng = r
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Activities returns the activity repository for read-only access.
func (e *Engine) Activities() *storage.ActivityRepo {
	return e.activities
}

// Logs returns the log repository for read-only access.
func (e *Engine) Logs() *storage.LogRepo {
	return e.logs
}

// Snapshot is the view-relevant subset of persisted state exposed to
// the presentation layer.
type Snapshot struct {
	State             model.PromptState `json:"state"`
	Activity          *model.Activity   `json:"activity,omitempty"`
	LastActivityID    string            `json:"last_activity_id,omitempty"`
	Settings          *model.Settings   `json:"settings"`
	Activities        []*model.Activity `json:"activities"`
	PromptedToday     int               `json:"prompted_today"`
	HasSeenOnboarding bool              `json:"has_seen_onboarding"`
	Today             string            `json:"today"`
}

// eventState carries the per-event working copy of the persisted
// singletons, loaded fresh at the start of each event.
type eventState struct {
	now      time.Time
	today    string
	settings *model.Settings
	session  *model.Session
	didRoll  bool
}

// begin loads the currently persisted settings and session and runs
// the day-rollover check. On rollover the session is reset to idle;
// yesterday's prompt or summary is discarded.
func (e *Engine) begin() *eventState {
	now := e.clock.Now()
	st := &eventState{
		now:   now,
		today: clock.DayKey(now),
	}
	st.settings = e.state.Settings(st.today)
	st.session = e.state.Session()

	st.didRoll = checkRollover(e.rng, st.settings, st.today)
	if st.didRoll {
		st.session.Reset()
		logging.Info("day rollover",
			logging.KeyDay, st.today,
			logging.KeyQuota, st.settings.NotificationsToday)
	}
	return st
}

// commit writes the event's settings and session plus any extra
// records and deletions in a single transaction.
func (e *Engine) commit(st *eventState, extra []model.Model, deletes ...string) error {
	return e.db.Update(func(txn *badger.Txn) error {
		if err := storage.SetIn(txn, st.settings); err != nil {
			return err
		}
		if err := storage.SetIn(txn, st.session); err != nil {
			return err
		}
		for _, m := range extra {
			if err := storage.SetIn(txn, m); err != nil {
				return err
			}
		}
		for _, key := range deletes {
			if err := storage.DeleteIn(txn, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// snapshot builds the presentation view for the event's state.
func (e *Engine) snapshot(st *eventState) (*Snapshot, error) {
	pool, err := e.activities.List()
	if err != nil {
		return nil, apperrors.NewSystemErrorWithOp("list activities", "storage read failed", err)
	}
	count, err := e.logs.CountDay(st.today)
	if err != nil {
		return nil, apperrors.NewSystemErrorWithOp("count logs", "storage read failed", err)
	}
	flags := e.state.Flags()

	return &Snapshot{
		State:             st.session.State,
		Activity:          st.session.Activity,
		LastActivityID:    st.session.LastActivityID,
		Settings:          st.settings,
		Activities:        pool,
		PromptedToday:     count,
		HasSeenOnboarding: flags.HasSeenOnboarding,
		Today:             st.today,
	}, nil
}

// Snapshot reconciles with the wall clock and returns the current
// state. Rollovers detected here are persisted before returning.
func (e *Engine) Snapshot() (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	if st.didRoll {
		if err := e.commit(st, nil); err != nil {
			return nil, err
		}
	}
	return e.snapshot(st)
}

// Reconcile re-checks the calendar day against the persisted
// settings. Invoked at session start and whenever the host resumes
// from background, since real time may have advanced past midnight
// while the process was suspended. Returns true if a new day started.
func (e *Engine) Reconcile() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	if !st.didRoll {
		return false, nil
	}
	return true, e.commit(st, nil)
}

// AddActivity appends a new activity to the pool.
func (e *Engine) AddActivity(text string) (*model.Activity, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.ErrEmptyActivityText
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	id, err := newID()
	if err != nil {
		return nil, err
	}

	activity := model.NewActivity(id, text, st.now)
	if err := e.commit(st, []model.Model{activity}); err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteActivity removes an activity from the pool. A prompt currently
// showing the deleted activity stays answerable: the session holds a
// snapshot, not a live reference.
func (e *Engine) DeleteActivity(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	exists, err := e.activities.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrActivityNotFound
	}

	return e.commit(st, nil, model.GenerateActivityKey(id))
}

// Trigger fires one scheduling decision. From idle: if today's
// answered prompts have reached the quota the session moves to
// summary pending; with an empty pool nothing happens; otherwise the
// selector picks the next activity and the session moves to
// prompting. Trigger while already prompting or summary pending is a
// no-op, so at most one prompt or summary is active at a time.
func (e *Engine) Trigger() (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	if st.session.State != model.StateIdle {
		logging.DebugLog("trigger ignored, prompt already active",
			logging.KeyState, string(st.session.State))
		if st.didRoll {
			if err := e.commit(st, nil); err != nil {
				return nil, err
			}
		}
		return e.snapshot(st)
	}

	count, err := e.logs.CountDay(st.today)
	if err != nil {
		return nil, err
	}

	if count >= st.settings.NotificationsToday {
		st.session.State = model.StateSummary
		logging.Info("quota exhausted, summary pending",
			logging.KeyCount, count, logging.KeyQuota, st.settings.NotificationsToday)
	} else {
		pool, err := e.activities.List()
		if err != nil {
			return nil, err
		}
		if len(pool) == 0 {
			logging.DebugLog("trigger ignored, activity pool empty")
		} else {
			selected := selectNext(e.rng, pool, st.session.LastActivityID)
			st.session.Prompt(selected)
			logging.Info("prompting", logging.KeyActivity, selected.ID)
		}
	}

	if err := e.commit(st, nil); err != nil {
		return nil, err
	}
	return e.snapshot(st)
}

// Respond answers the active prompt, appending a log entry with the
// snapshotted activity text and returning the session to idle. Calling
// Respond while not prompting is a no-op and returns a nil entry.
func (e *Engine) Respond(completed bool) (*model.LogEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	if !st.session.IsPrompting() {
		logging.DebugLog("respond ignored, no active prompt",
			logging.KeyState, string(st.session.State))
		if st.didRoll {
			if err := e.commit(st, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	entry := model.NewLogEntry(id, st.session.Activity, st.now, completed)
	st.session.LastActivityID = st.session.Activity.ID
	st.session.Reset()

	if err := e.commit(st, []model.Model{entry}); err != nil {
		return nil, err
	}
	return entry, nil
}

// DismissSummary acknowledges the end-of-day summary and returns the
// session to idle. The summary is computed from logs at display time
// and never stored, so dismissal writes no log entry. Returns false
// if no summary was pending.
func (e *Engine) DismissSummary() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	if !st.session.IsSummaryPending() {
		logging.DebugLog("dismiss ignored, no summary pending",
			logging.KeyState, string(st.session.State))
		if st.didRoll {
			if err := e.commit(st, nil); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	st.session.Reset()
	return true, e.commit(st, nil)
}

// UpdateSettings edits the prompt count bounds. Either bound may be
// nil to leave it unchanged. Out-of-range values are clamped at the
// edited field, never rejected; a consistent pair edited together is
// applied verbatim. Today's quota is not recomputed; the new bounds
// take effect at the next rollover.
func (e *Engine) UpdateSettings(min, max *int) (*model.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	// A raised max must land before min so the new min is never
	// clamped against the stale bound.
	if min != nil && max != nil && *max >= st.settings.MaxNotifications {
		st.settings.SetMax(*max)
		st.settings.SetMin(*min)
	} else {
		if min != nil {
			st.settings.SetMin(*min)
		}
		if max != nil {
			st.settings.SetMax(*max)
		}
	}

	if err := e.commit(st, nil); err != nil {
		return nil, err
	}
	return st.settings, nil
}

// DismissOnboarding marks the onboarding hint as seen. Set once,
// never reset.
func (e *Engine) DismissOnboarding() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.begin()
	flags := e.state.Flags()
	flags.HasSeenOnboarding = true
	return e.commit(st, []model.Model{flags})
}

// Stats aggregates completion statistics over all log entries with a
// timestamp strictly after windowStart; nil means all-time.
func (e *Engine) Stats(windowStart *time.Time) (Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries, err := e.logs.List()
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(entries, windowStart), nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
