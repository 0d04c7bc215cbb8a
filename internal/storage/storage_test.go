package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudge-cli/nudge/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := OpenInMemory()
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("on_disk_creates_directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "db")
		db, err := Open(dir)
		require.NoError(t, err)
		assert.NoError(t, db.Close())

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "nudge")
	assert.Contains(t, path, "db")
}

func TestGetSetRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	activity := model.NewActivity("a1", "stretch", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, db.Set(activity))

	got := &model.Activity{}
	require.NoError(t, db.Get(activity.GetKey(), got))
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "stretch", got.Text)
	assert.Equal(t, activity.GetKey(), got.GetKey())
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := db.Get("missing", &model.Activity{})
	assert.True(t, IsErrKeyNotFound(err))
}

func TestUpdateCommitsAtomically(t *testing.T) {
	db := setupTestDB(t)

	session := model.NewSession()
	settings := model.NewSettings("2024-01-01")
	activity := model.NewActivity("a1", "stretch", time.Now())

	err := db.Update(func(txn *badger.Txn) error {
		if err := SetIn(txn, session); err != nil {
			return err
		}
		if err := SetIn(txn, settings); err != nil {
			return err
		}
		return SetIn(txn, activity)
	})
	require.NoError(t, err)

	for _, key := range []string{model.KeySession, model.KeySettings, activity.GetKey()} {
		exists, err := db.Exists(key)
		require.NoError(t, err)
		assert.True(t, exists, "key %s", key)
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)

	sentinel := assert.AnError
	err := db.Update(func(txn *badger.Txn) error {
		if err := SetIn(txn, model.NewSession()); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	exists, err := db.Exists(model.KeySession)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteInMissingKeyIsNoError(t *testing.T) {
	db := setupTestDB(t)

	err := db.Update(func(txn *badger.Txn) error {
		return DeleteIn(txn, "activity:never-existed")
	})
	assert.NoError(t, err)
}

func TestActivityRepoListSorted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepo(db)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Set(model.NewActivity("b", "second", base.Add(time.Hour))))
	require.NoError(t, db.Set(model.NewActivity("a", "first", base)))

	activities, err := repo.List()
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "first", activities[0].Text)
	assert.Equal(t, "second", activities[1].Text)
}

func TestActivityRepoListSkipsCorruptRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepo(db)

	require.NoError(t, db.Set(model.NewActivity("a", "good", time.Now())))
	require.NoError(t, db.SetBytes(model.GenerateActivityKey("bad"), []byte("{broken")))

	activities, err := repo.List()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "good", activities[0].Text)
}

func TestLogRepoCountDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepo(db)

	activity := model.NewActivity("a", "stretch", time.Now())
	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local)

	require.NoError(t, db.Set(model.NewLogEntry("l1", activity, day1, true)))
	require.NoError(t, db.Set(model.NewLogEntry("l2", activity, day1.Add(time.Hour), false)))
	require.NoError(t, db.Set(model.NewLogEntry("l3", activity, day2, true)))

	// Summary rows never count toward the daily total.
	summary := model.NewLogEntry("l4", activity, day1, true)
	summary.IsSummary = true
	require.NoError(t, db.Set(summary))

	count, err := repo.CountDay("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountDay("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStateRepoDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepo(db)

	settings := repo.Settings("2024-01-01")
	assert.Equal(t, model.DefaultMinNotifications, settings.MinNotifications)
	assert.Equal(t, model.DefaultMaxNotifications, settings.MaxNotifications)
	assert.Equal(t, model.DefaultNotificationsToday, settings.NotificationsToday)
	assert.Equal(t, "2024-01-01", settings.LastGeneratedDate)

	session := repo.Session()
	assert.Equal(t, model.StateIdle, session.State)
	assert.Nil(t, session.Activity)

	flags := repo.Flags()
	assert.False(t, flags.HasSeenOnboarding)
}

func TestStateRepoCorruptRecordYieldsDefault(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepo(db)

	require.NoError(t, db.SetBytes(model.KeySettings, []byte("garbage")))
	require.NoError(t, db.Set(model.NewActivity("a", "untouched", time.Now())))

	settings := repo.Settings("2024-02-02")
	assert.Equal(t, model.DefaultMinNotifications, settings.MinNotifications)
	assert.Equal(t, "2024-02-02", settings.LastGeneratedDate)

	// Recovery substitutes the default for that key alone.
	activities, err := NewActivityRepo(db).List()
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestStateRepoNormalizesLoadedRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepo(db)

	bad := &model.Settings{
		Key:               model.KeySettings,
		MinNotifications:  9,
		MaxNotifications:  2,
		LastGeneratedDate: "2024-01-01",
	}
	require.NoError(t, db.Set(bad))

	settings := repo.Settings("2024-01-01")
	assert.LessOrEqual(t, settings.MinNotifications, settings.MaxNotifications)
}
