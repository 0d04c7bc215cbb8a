// Package scheduler drives the engine's trigger events through a day.
//
// The engine only decides what happens when a trigger fires; this
// package decides when. On each day rollover it draws the remaining
// prompt count's worth of random fire times across the rest of the
// day, then checks once a minute whether one is due.
package scheduler

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nudge-cli/nudge/internal/clock"
	"github.com/nudge-cli/nudge/internal/engine"
	"github.com/nudge-cli/nudge/internal/logging"
	"github.com/nudge-cli/nudge/internal/model"
)

// PromptFunc presents a due prompt to the user. Implementations
// usually answer it through engine.Respond.
type PromptFunc func(activity *model.Activity)

// SummaryFunc presents the end-of-day summary to the user.
type SummaryFunc func(stats engine.Stats)

// Watcher schedules triggers against the engine.
type Watcher struct {
	cron      *cron.Cron
	engine    *engine.Engine
	clk       clock.Clock
	rng       *rand.Rand
	onPrompt  PromptFunc
	onSummary SummaryFunc

	mu        sync.Mutex
	lastCheck time.Time
	planDay   string
	plan      []time.Time
}

// NewWatcher creates a watcher over the given engine.
func NewWatcher(e *engine.Engine, onPrompt PromptFunc, onSummary SummaryFunc) *Watcher {
	return &Watcher{
		cron:      cron.New(cron.WithSeconds()),
		engine:    e,
		clk:       clock.System(),
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		onPrompt:  onPrompt,
		onSummary: onSummary,
	}
}

// SetClock replaces the clock. Used by tests.
func (w *Watcher) SetClock(c clock.Clock) {
	w.clk = c
}

// SetRand replaces the random source. Used by tests.
func (w *Watcher) SetRand(r *rand.Rand) {
	w.rng = r
}

// Start begins the minute tick loop.
func (w *Watcher) Start() error {
	w.lastCheck = w.clk.Now()

	if _, err := w.cron.AddFunc("0 * * * * *", w.Tick); err != nil {
		return err
	}
	w.cron.Start()

	logging.Info("watcher started")
	return nil
}

// Stop stops the tick loop and waits for a running tick to finish.
func (w *Watcher) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
	logging.Info("watcher stopped")
}

// Tick runs one scheduling check. Exposed so the watch command can
// run an immediate check on startup.
func (w *Watcher) Tick() {
	now := w.clk.Now()

	w.mu.Lock()
	elapsed := now.Sub(w.lastCheck)
	w.lastCheck = now
	w.mu.Unlock()

	// After a long system sleep the plan is stale; rebuild it below.
	if elapsed > time.Hour {
		logging.DebugLog("stale tick after sleep, replanning", "elapsed", elapsed.String())
		w.invalidatePlan()
	}

	snap, err := w.engine.Snapshot()
	if err != nil {
		logging.Error("snapshot failed", logging.KeyError, err)
		return
	}

	w.ensurePlan(snap, now)

	switch snap.State {
	case model.StatePrompting:
		// A prompt is already open (possibly from a previous run);
		// re-present it rather than firing a new trigger.
		w.present(snap)
		return
	case model.StateSummary:
		w.presentSummary(now)
		return
	}

	if !w.takeDue(now) {
		return
	}

	snap, err = w.engine.Trigger()
	if err != nil {
		logging.Error("trigger failed", logging.KeyError, err)
		return
	}

	switch snap.State {
	case model.StatePrompting:
		w.present(snap)
	case model.StateSummary:
		w.presentSummary(now)
	}
}

// ensurePlan rebuilds the day's fire-time plan when the day changed.
// Only the prompts not yet answered today are planned, spread over the
// remainder of the day.
func (w *Watcher) ensurePlan(snap *engine.Snapshot, now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.planDay == snap.Today {
		return
	}

	remaining := snap.Settings.NotificationsToday - snap.PromptedToday
	w.plan = planTimes(w.rng, remaining, now, clock.EndOfDay(now))
	w.planDay = snap.Today

	logging.Info("planned prompts",
		logging.KeyDay, snap.Today, logging.KeyCount, len(w.plan))
}

// invalidatePlan forces a rebuild on the next tick.
func (w *Watcher) invalidatePlan() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.planDay = ""
	w.plan = nil
}

// takeDue consumes due plan entries and reports whether a trigger
// should fire now. Multiple overdue entries collapse into one trigger;
// the engine only holds one prompt at a time anyway.
func (w *Watcher) takeDue(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	due := 0
	for due < len(w.plan) && !w.plan[due].After(now) {
		due++
	}
	if due == 0 {
		return false
	}
	w.plan = w.plan[due:]
	return true
}

// PendingPlan returns the not-yet-due fire times. Used by tests and
// the watch command's status output.
func (w *Watcher) PendingPlan() []time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]time.Time(nil), w.plan...)
}

func (w *Watcher) present(snap *engine.Snapshot) {
	if w.onPrompt != nil && snap.Activity != nil {
		w.onPrompt(snap.Activity)
	}
}

func (w *Watcher) presentSummary(now time.Time) {
	if w.onSummary == nil {
		return
	}
	dayStart := clock.StartOfDay(now)
	stats, err := w.engine.Stats(&dayStart)
	if err != nil {
		logging.Error("stats failed", logging.KeyError, err)
		return
	}
	w.onSummary(stats)
}
