package model

import "slices"

// Activity is a school activity with a bounded participant roster.
// MaxParticipants is a display value; signup does not enforce it.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether email is already on the roster.
// Matching is exact and case-sensitive.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a deep copy of the activity so callers can hold a
// snapshot without aliasing the live roster slice.
func (a *Activity) Clone() *Activity {
	return &Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    slices.Clone(a.Participants),
	}
}

// MessageResponse is the success acknowledgment returned by the two
// write operations.
type MessageResponse struct {
	Message string `json:"message"`
}
