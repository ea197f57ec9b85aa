package user

import (
	"strconv"
	"time"
)

// Registered is published to the user event topic after a new account commits.
type Registered struct {
	UserID UserID    `json:"userId"`
	At     time.Time `json:"-"`
}

func (e Registered) EventName() string     { return "user.registered" }
func (e Registered) AggregateID() string   { return strconv.FormatInt(int64(e.UserID), 10) }
func (e Registered) OccurredAt() time.Time { return e.At }

func RegisteredEvent(id UserID, at time.Time) Registered {
	return Registered{UserID: id, At: at.UTC()}
}
