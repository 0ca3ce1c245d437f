package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities-api/internal/metrics"
	"github.com/mergington/activities-api/internal/model"
	"github.com/mergington/activities-api/internal/repository"
)

// ActivityStore defines the interface for activity storage
type ActivityStore interface {
	All(ctx context.Context) map[string]*model.Activity
	Get(ctx context.Context, name string) (*model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService implements the registry operations over an ActivityStore
type ActivityService struct {
	store ActivityStore
}

// NewActivityService creates a new activity service
func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// ListActivities returns the full current mapping of activity name to
// record, including live rosters. It never fails and never mutates state.
func (s *ActivityService) ListActivities(ctx context.Context) map[string]*model.Activity {
	return s.store.All(ctx)
}

// Signup registers email for the named activity. Preconditions are checked
// in order: the activity must exist (ErrActivityNotFound), and email must
// not already be registered (ErrAlreadyRegistered). On success email is
// appended to the end of the roster.
//
// The activity's max_participants value is intentionally not checked;
// signup succeeds past the stated capacity. The cap is display metadata.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (string, error) {
	err := s.store.AddParticipant(ctx, name, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "", ErrActivityNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return "", ErrAlreadyRegistered
	case err != nil:
		return "", fmt.Errorf("signup %q for %q: %w", email, name, err)
	}
	metrics.SignupsTotal.WithLabelValues(name).Inc()
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Remove unregisters email from the named activity. Preconditions are
// checked in order: the activity must exist (ErrActivityNotFound), and
// email must currently be registered (ErrParticipantNotFound). On success
// the roster keeps its relative order.
func (s *ActivityService) Remove(ctx context.Context, name, email string) (string, error) {
	err := s.store.RemoveParticipant(ctx, name, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "", ErrActivityNotFound
	case errors.Is(err, repository.ErrParticipantNotFound):
		return "", ErrParticipantNotFound
	case err != nil:
		return "", fmt.Errorf("remove %q from %q: %w", email, name, err)
	}
	metrics.RemovalsTotal.WithLabelValues(name).Inc()
	return fmt.Sprintf("Removed %s from %s", email, name), nil
}
