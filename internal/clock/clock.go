// Package clock supplies wall-clock time and calendar day keys so the
// engine's day-rollover logic can be pinned in tests.
package clock

import "time"

// dayKeyLayout is the canonical calendar day key format.
const dayKeyLayout = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now returns the function's result.
func (f Func) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// DayKey returns the canonical day key (YYYY-MM-DD, local time) for t.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the start of the calendar day after t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}
