package repositories

import (
	"errors"
	"time"

	"bank-portal/entities"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(session *entities.Session) error
	GetByID(id string) (*entities.Session, error)
	Update(session *entities.Session) error
	Delete(id string) error
	DeleteExpired(now time.Time) (int64, error)
}
