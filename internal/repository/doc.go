// Package repository implements the data access layer for the activities API.
//
// The only store is ActivityStore, an in-memory registry mapping activity
// name to its record. The process seeds the store once at startup and the
// activity name set never changes afterwards; only participant rosters are
// mutated. There is no persistence: state lives for the process lifetime.
//
// # Concurrency
//
// All store operations take a single mutex, so a membership check and the
// mutation it guards happen atomically. Reads return deep copies; callers
// never observe the live roster slices.
//
// # Error Handling
//
// Standard errors are defined for the failure cases:
//
//   - ErrNotFound: the named activity does not exist
//   - ErrDuplicate: the participant is already on the roster
//   - ErrParticipantNotFound: the participant is not on the roster
//
// Use errors.Is() to check error types in calling code.
package repository
