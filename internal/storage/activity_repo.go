package storage

import (
	"sort"

	"github.com/nudge-cli/nudge/internal/model"
)

// ActivityRepo provides read access to the activity pool. Writes go
// through the engine's transactional commit.
type ActivityRepo struct {
	db *DB
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(db *DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Get retrieves an activity by id.
func (r *ActivityRepo) Get(id string) (*model.Activity, error) {
	activity := &model.Activity{}
	if err := r.db.Get(model.GenerateActivityKey(id), activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Exists checks whether an activity with the given id exists.
func (r *ActivityRepo) Exists(id string) (bool, error) {
	return r.db.Exists(model.GenerateActivityKey(id))
}

// List returns all activities ordered by creation time.
func (r *ActivityRepo) List() ([]*model.Activity, error) {
	activities, err := GetAllByPrefix(r.db, model.PrefixActivity+":", func() *model.Activity {
		return &model.Activity{}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.Before(activities[j].CreatedAt)
	})
	return activities, nil
}

// Count returns the number of activities in the pool.
func (r *ActivityRepo) Count() (int, error) {
	activities, err := r.List()
	if err != nil {
		return 0, err
	}
	return len(activities), nil
}
