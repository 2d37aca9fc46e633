// README: Session service: per-key serialized load-update-save over a Store.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sofia/internal/modules/intent"
)

// Service owns session lifecycle and guarantees that updates to a single
// session are serialized. Cross-session work needs no coordination, so the
// lock is per key, not global.
type Service struct {
	store   *lockedStore
	tracker *Tracker
}

// NewService creates a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: newLockedStore(store), tracker: NewTracker()}
}

// Touch loads the session for id, creating a fresh one when id is empty or
// unknown, applies the classified turn, and saves the result. The returned
// snapshot reflects the state after this turn.
func (s *Service) Touch(ctx context.Context, id string, category intent.Category, ents Entities, rawText string) (*Session, error) {
	if id == "" {
		id = uuid.NewString()
	}
	unlock := s.store.lock(id)
	defer unlock()

	sess, err := s.store.inner.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		sess = New(id)
	} else if err != nil {
		return nil, err
	}

	s.tracker.Update(sess, category, ents, rawText)

	if err := s.store.inner.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the current snapshot for id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	unlock := s.store.lock(id)
	defer unlock()
	return s.store.inner.Get(ctx, id)
}

// Destroy removes the session; destroying an absent session is a no-op.
func (s *Service) Destroy(ctx context.Context, id string) error {
	unlock := s.store.lock(id)
	defer unlock()
	return s.store.inner.Delete(ctx, id)
}
