// Package model defines the domain entities and wire types for the
// Mergington activities API.
//
// The central entity is Activity: a named extracurricular group with a
// schedule, a display capacity, and an ordered roster of participant
// emails. Activities are keyed by their human-readable name; the name
// itself is not stored on the record.
//
// # JSON Serialization
//
// Field names on the wire follow the original API exactly:
//
//	type Activity struct {
//	    Description     string   `json:"description"`
//	    Schedule        string   `json:"schedule"`
//	    MaxParticipants int      `json:"max_participants"`
//	    Participants    []string `json:"participants"`
//	}
//
// Error responses carry a single "detail" field; see errors.go.
package model
