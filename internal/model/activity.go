package model

import (
	"fmt"
	"time"
)

// Activity is a user-defined item the engine reminds about. Immutable
// once created except deletion.
type Activity struct {
	Key       string    `json:"key"`
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SetKey sets the database key for this activity.
func (a *Activity) SetKey(key string) {
	a.Key = key
}

// GetKey returns the database key for this activity.
func (a *Activity) GetKey() string {
	return a.Key
}

// ShortID returns the first 6 characters of the id for display.
func (a *Activity) ShortID() string {
	if len(a.ID) > 6 {
		return a.ID[:6]
	}
	return a.ID
}

// GenerateActivityKey generates a database key for an activity using UUID.
func GenerateActivityKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixActivity, uuid)
}

// NewActivity creates a new activity with the given id and text.
func NewActivity(id, text string, createdAt time.Time) *Activity {
	return &Activity{
		Key:       GenerateActivityKey(id),
		ID:        id,
		Text:      text,
		CreatedAt: createdAt,
	}
}
