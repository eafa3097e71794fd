package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/s21platform/meeting-service/internal/model"
)

// Repository keeps sessions in process memory. Used for local runs and tests.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
	now      func() time.Time
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string]model.Session),
		now:      time.Now,
	}
}

func (r *Repository) Get(_ context.Context, title string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[title]
	if !ok || session.Expired(r.now()) {
		return nil, model.ErrSessionNotFound
	}

	return &session, nil
}

func (r *Repository) Put(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Title] = *session

	return nil
}

func (r *Repository) Delete(_ context.Context, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, title)

	return nil
}

func (r *Repository) List(_ context.Context, limit int) (model.SessionList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	sessions := make(model.SessionList, 0, len(r.sessions))
	for _, session := range r.sessions {
		if session.Expired(now) {
			continue
		}
		sessions = append(sessions, session)
	}

	slices.SortFunc(sessions, func(a, b model.Session) int {
		return strings.Compare(a.Title, b.Title)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions, nil
}

func (r *Repository) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for title, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, title)
			purged++
		}
	}

	return purged, nil
}
