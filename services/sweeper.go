package services

import (
	"context"
	"log/slog"
	"time"

	"bank-portal/cache"
	"bank-portal/repositories"
)

// Sweeper periodically drops expired toasts and portal sessions.
type Sweeper struct {
	queue    *cache.NotificationQueue
	sessions repositories.SessionRepository
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(queue *cache.NotificationQueue, sessions repositories.SessionRepository, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{queue: queue, sessions: sessions, interval: interval, now: time.Now}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Sweep does one pass and returns how many toasts and sessions it removed.
func (s *Sweeper) Sweep() (toasts int, sessions int64) {
	toasts = s.queue.Sweep()
	if s.sessions != nil {
		n, err := s.sessions.DeleteExpired(s.now())
		if err != nil {
			slog.Error("purging expired sessions", "error", err)
		}
		sessions = n
	}
	if toasts > 0 || sessions > 0 {
		slog.Debug("sweep finished", "toasts", toasts, "sessions", sessions)
	}
	return toasts, sessions
}
