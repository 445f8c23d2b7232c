package cache

import (
	"sync"
	"time"

	"bank-portal/entities"

	"github.com/google/uuid"
)

// NotificationQueue keeps the toasts of every visitor, newest first.
// A toast disappears once it is older than the queue TTL.
type NotificationQueue struct {
	mu     sync.RWMutex
	queues map[string][]entities.Notification // map[visitorID]newest-first
	ttl    time.Duration
	now    func() time.Time
}

func NewNotificationQueue(ttl time.Duration) *NotificationQueue {
	return &NotificationQueue{
		queues: make(map[string][]entities.Notification),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SetClock replaces the time source.
func (q *NotificationQueue) SetClock(now func() time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.now = now
}

func (q *NotificationQueue) TTL() time.Duration { return q.ttl }

// Push adds a toast in front of the visitor's queue.
func (q *NotificationQueue) Push(visitorID string, typ entities.NotificationType, message string) entities.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := entities.Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Message:   message,
		Timestamp: q.now(),
	}
	q.queues[visitorID] = append([]entities.Notification{n}, q.queues[visitorID]...)
	return n
}

// List returns a copy of the visitor's live toasts.
func (q *NotificationQueue) List(visitorID string) []entities.Notification {
	q.mu.RLock()
	defer q.mu.RUnlock()

	now := q.now()
	out := make([]entities.Notification, 0, len(q.queues[visitorID]))
	for _, n := range q.queues[visitorID] {
		if !q.expired(n, now) {
			out = append(out, n)
		}
	}
	return out
}

// Remove dismisses one toast and reports whether it was there.
func (q *NotificationQueue) Remove(visitorID, id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := q.queues[visitorID]
	for i, n := range queue {
		if n.ID == id {
			q.queues[visitorID] = append(queue[:i:i], queue[i+1:]...)
			if len(q.queues[visitorID]) == 0 {
				delete(q.queues, visitorID)
			}
			return true
		}
	}
	return false
}

func (q *NotificationQueue) Clear(visitorID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.queues, visitorID)
}

// Sweep drops every expired toast and returns how many went.
func (q *NotificationQueue) Sweep() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	removed := 0
	for visitorID, queue := range q.queues {
		kept := queue[:0]
		for _, n := range queue {
			if q.expired(n, now) {
				removed++
				continue
			}
			kept = append(kept, n)
		}
		if len(kept) == 0 {
			delete(q.queues, visitorID)
		} else {
			q.queues[visitorID] = kept
		}
	}
	return removed
}

// Stats returns statistics about the current queues
func (q *NotificationQueue) Stats() map[string]interface{} {
	q.mu.RLock()
	defer q.mu.RUnlock()

	total := 0
	for _, queue := range q.queues {
		total += len(queue)
	}
	return map[string]interface{}{
		"total_visitors":      len(q.queues),
		"total_notifications": total,
		"ttl_seconds":         q.ttl.Seconds(),
	}
}

func (q *NotificationQueue) expired(n entities.Notification, now time.Time) bool {
	return q.ttl > 0 && now.Sub(n.Timestamp) >= q.ttl
}
