package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nudge-cli/nudge/internal/model"
)

func TestCheckRolloverSameDay(t *testing.T) {
	rng := testRand()
	settings := model.NewSettings("2024-01-01")
	settings.NotificationsToday = 7

	didRoll := checkRollover(rng, settings, "2024-01-01")

	assert.False(t, didRoll)
	assert.Equal(t, 7, settings.NotificationsToday)
	assert.Equal(t, "2024-01-01", settings.LastGeneratedDate)
}

func TestCheckRolloverNewDay(t *testing.T) {
	rng := testRand()
	settings := model.NewSettings("2024-01-01")
	settings.MinNotifications = 2
	settings.MaxNotifications = 4

	didRoll := checkRollover(rng, settings, "2024-01-02")

	assert.True(t, didRoll)
	assert.Equal(t, "2024-01-02", settings.LastGeneratedDate)
	assert.GreaterOrEqual(t, settings.NotificationsToday, 2)
	assert.LessOrEqual(t, settings.NotificationsToday, 4)
}

func TestCheckRolloverIdempotent(t *testing.T) {
	rng := testRand()
	settings := model.NewSettings("2024-01-01")

	assert.True(t, checkRollover(rng, settings, "2024-01-02"))
	quota := settings.NotificationsToday

	// Second check for the same day must change nothing.
	assert.False(t, checkRollover(rng, settings, "2024-01-02"))
	assert.Equal(t, quota, settings.NotificationsToday)
}
