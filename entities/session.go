package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a portal login. It remembers who the browser is and the cookies
// the auth service issued so they can be replayed on later calls.
type Session struct {
	ID              string    `gorm:"type:text;primaryKey" json:"id"`
	VisitorID       string    `gorm:"index" json:"visitor_id"`
	UserID          int64     `json:"user_id"`
	Username        string    `json:"username"`
	Role            Role      `json:"role"`
	UpstreamCookies string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	LastSeenAt      time.Time `json:"last_seen_at"`
	ExpiresAt       time.Time `gorm:"index" json:"expires_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.LastSeenAt = s.CreatedAt
	return
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
