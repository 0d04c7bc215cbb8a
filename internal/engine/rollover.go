package engine

import (
	"math/rand/v2"

	"github.com/nudge-cli/nudge/internal/model"
)

// checkRollover compares the settings' last generated date to the
// current day key. On mismatch it draws a fresh quota and stamps the
// settings with today, returning true. Idempotent: a second call with
// the same day key changes nothing.
//
// Callers must reset the session to idle when this returns true;
// yesterday's unfinished prompt or summary is never carried into a
// new day.
func checkRollover(rng *rand.Rand, settings *model.Settings, today string) bool {
	if settings.LastGeneratedDate == today {
		return false
	}

	settings.NotificationsToday = nextQuota(rng, settings.MinNotifications, settings.MaxNotifications)
	settings.LastGeneratedDate = today
	return true
}
