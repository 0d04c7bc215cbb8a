package scheduler

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudge-cli/nudge/internal/clock"
	"github.com/nudge-cli/nudge/internal/engine"
	"github.com/nudge-cli/nudge/internal/model"
	"github.com/nudge-cli/nudge/internal/storage"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestPlanTimesWithinWindow(t *testing.T) {
	rng := testRand()
	from := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	until := from.Add(8 * time.Hour)

	times := planTimes(rng, 6, from, until)
	require.Len(t, times, 6)

	for i, ts := range times {
		assert.False(t, ts.Before(from), "time %d before window", i)
		assert.True(t, ts.Before(until), "time %d past window", i)
		if i > 0 {
			assert.False(t, ts.Before(times[i-1]), "plan not sorted at %d", i)
		}
	}
}

func TestPlanTimesEmpty(t *testing.T) {
	rng := testRand()
	now := time.Now()

	assert.Nil(t, planTimes(rng, 0, now, now.Add(time.Hour)))
	assert.Nil(t, planTimes(rng, -1, now, now.Add(time.Hour)))
	assert.Nil(t, planTimes(rng, 3, now, now))
}

func setupWatcher(t *testing.T) (*Watcher, *engine.Engine, *time.Time, *[]string) {
	t.Helper()

	db, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	cur := &now

	e := engine.New(db)
	e.SetClock(clock.Func(func() time.Time { return *cur }))
	e.SetRand(testRand())

	var prompted []string
	w := NewWatcher(e, func(a *model.Activity) {
		prompted = append(prompted, a.ID)
		_, err := e.Respond(true)
		require.NoError(t, err)
	}, nil)
	w.SetClock(clock.Func(func() time.Time { return *cur }))
	w.SetRand(testRand())

	return w, e, cur, &prompted
}

func TestWatcherPlansOnFirstTick(t *testing.T) {
	w, e, _, _ := setupWatcher(t)
	_, err := e.AddActivity("stretch")
	require.NoError(t, err)

	w.Tick()

	snap, err := e.Snapshot()
	require.NoError(t, err)
	assert.Len(t, w.PendingPlan(), snap.Settings.NotificationsToday)
}

func TestWatcherFiresDuePrompts(t *testing.T) {
	w, e, now, prompted := setupWatcher(t)
	activity, err := e.AddActivity("stretch")
	require.NoError(t, err)

	w.Tick() // builds the plan

	// Jump to late evening, past the whole day's plan; overdue
	// entries collapse into one trigger per tick.
	*now = now.Add(14 * time.Hour)
	w.Tick()

	require.Len(t, *prompted, 1)
	assert.Equal(t, activity.ID, (*prompted)[0])
	assert.Empty(t, w.PendingPlan())
}

func TestWatcherReplansOnNewDay(t *testing.T) {
	w, e, now, _ := setupWatcher(t)
	_, err := e.AddActivity("stretch")
	require.NoError(t, err)

	w.Tick()
	before := w.PendingPlan()
	require.NotEmpty(t, before)

	*now = now.AddDate(0, 0, 1)
	w.Tick()

	after := w.PendingPlan()
	require.NotEmpty(t, after)
	assert.Equal(t, clock.DayKey(*now), clock.DayKey(after[0]))
}

func TestWatcherPresentsSummaryWhenQuotaDone(t *testing.T) {
	db, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	cur := &now

	e := engine.New(db)
	e.SetClock(clock.Func(func() time.Time { return *cur }))
	e.SetRand(testRand())

	_, err = e.AddActivity("stretch")
	require.NoError(t, err)

	// Exhaust the quota directly through the engine.
	for {
		snap, err := e.Trigger()
		require.NoError(t, err)
		if snap.State == model.StateSummary {
			break
		}
		require.Equal(t, model.StatePrompting, snap.State)
		_, err = e.Respond(true)
		require.NoError(t, err)
	}

	var summaries []engine.Stats
	w := NewWatcher(e, nil, func(stats engine.Stats) {
		summaries = append(summaries, stats)
	})
	w.SetClock(clock.Func(func() time.Time { return *cur }))
	w.SetRand(testRand())

	w.Tick()

	require.Len(t, summaries, 1)
	assert.Equal(t, summaries[0].Total, summaries[0].Completed)
}
