package repositories

import (
	"sync"
	"time"

	"bank-portal/entities"

	"github.com/google/uuid"
)

// sessionMemRepository keeps sessions in process memory. Used when no database is configured.
type sessionMemRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func NewSessionMemRepository() SessionRepository {
	return &sessionMemRepository{sessions: make(map[string]entities.Session)}
}

func (r *sessionMemRepository) Create(session *entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	session.LastSeenAt = session.CreatedAt
	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionMemRepository) GetByID(id string) (*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (r *sessionMemRepository) Update(session *entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return ErrSessionNotFound
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionMemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *sessionMemRepository) DeleteExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
