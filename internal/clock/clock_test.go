package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	loc := time.FixedZone("TST", 3600)
	ts := time.Date(2024, 1, 2, 23, 59, 59, 0, loc)
	assert.Equal(t, "2024-01-02", DayKey(ts))
}

func TestStartEndOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	start := StartOfDay(ts)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, "2024-03-15", DayKey(start))
	assert.Equal(t, "2024-03-16", DayKey(EndOfDay(ts)))
}

func TestFuncAdapter(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var c Clock = Func(func() time.Time { return fixed })
	assert.Equal(t, fixed, c.Now())
}
