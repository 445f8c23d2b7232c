package repositories

import (
	"errors"
	"time"

	"bank-portal/db"
	"bank-portal/entities"

	"gorm.io/gorm"
)

type sessionPgRepository struct {
	db db.Database
}

func NewSessionPgRepository(database db.Database) SessionRepository {
	return &sessionPgRepository{db: database}
}

func (r *sessionPgRepository) Create(session *entities.Session) error {
	return r.db.GetDB().Create(session).Error
}

func (r *sessionPgRepository) GetByID(id string) (*entities.Session, error) {
	var session entities.Session
	err := r.db.GetDB().Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionPgRepository) Update(session *entities.Session) error {
	return r.db.GetDB().Save(session).Error
}

func (r *sessionPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Session{}).Error
}

func (r *sessionPgRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.GetDB().Where("expires_at <= ?", now).Delete(&entities.Session{})
	return res.RowsAffected, res.Error
}
