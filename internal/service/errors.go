package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here so error
// handling in handlers stays predictable.
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrAlreadyRegistered   = errors.New("student already signed up")
	ErrParticipantNotFound = errors.New("student not registered for this activity")
)
