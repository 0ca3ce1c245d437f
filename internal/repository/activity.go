package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/mergington/activities-api/internal/model"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the named activity does not exist.
	ErrNotFound = errors.New("activity not found")

	// ErrDuplicate indicates the participant is already on the roster.
	ErrDuplicate = errors.New("participant already registered")

	// ErrParticipantNotFound indicates the participant is not on the roster.
	ErrParticipantNotFound = errors.New("participant not found")
)

// ActivityStore is the in-memory activity registry. The activity name set
// is fixed at construction time; only participant rosters mutate.
type ActivityStore struct {
	mu         sync.Mutex
	activities map[string]*model.Activity
}

// NewActivityStore creates a store owning deep copies of the given
// activities, keyed by name.
func NewActivityStore(activities map[string]*model.Activity) *ActivityStore {
	owned := make(map[string]*model.Activity, len(activities))
	for name, a := range activities {
		owned[name] = a.Clone()
	}
	return &ActivityStore{activities: owned}
}

// All returns a snapshot of every activity keyed by name. The snapshot is
// a deep copy; mutating it does not affect the store.
func (s *ActivityStore) All(ctx context.Context) map[string]*model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]*model.Activity, len(s.activities))
	for name, a := range s.activities {
		snapshot[name] = a.Clone()
	}
	return snapshot
}

// Get returns a copy of the named activity, or ErrNotFound. Lookup is
// exact-match and case-sensitive.
func (s *ActivityStore) Get(ctx context.Context, name string) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	return a.Clone(), nil
}

// AddParticipant appends email to the named activity's roster. It returns
// ErrNotFound if the activity does not exist and ErrDuplicate if email is
// already registered. The existence and duplicate checks and the append
// happen under one lock.
func (s *ActivityStore) AddParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if a.HasParticipant(email) {
		return ErrDuplicate
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes email from the named activity's roster,
// preserving the relative order of the remaining entries. It returns
// ErrNotFound if the activity does not exist and ErrParticipantNotFound
// if email is not registered.
func (s *ActivityStore) RemoveParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrParticipantNotFound
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

// Len returns the number of activities in the store.
func (s *ActivityStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activities)
}
