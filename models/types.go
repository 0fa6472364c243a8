package models

import "time"

// Roll number reserved for the single administrator account.
const AdminRollNumber = "tutor"

// Domain types. The JSON tags are the persisted field names and must not
// change: existing stores were written with this exact layout.

type User struct {
	RollNumber        string `json:"rollNumber"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	IsAdmin           bool   `json:"isAdmin"`
	HasCompletedSetup bool   `json:"hasCompletedSetup,omitempty"`
}

type Poll struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasOption reports whether option is one of the poll's choices.
func (p Poll) HasOption(option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}
	return false
}

type Response struct {
	PollID      string    `json:"pollId"`
	RollNumber  string    `json:"rollNumber"`
	Option      string    `json:"option"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// OptionCount is one row of a poll's tally, in option order.
type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}
