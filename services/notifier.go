package services

import (
	"encoding/json"
	"errors"
	"log/slog"

	"bank-portal/cache"
	"bank-portal/entities"
	"bank-portal/metrics"
	"bank-portal/ws"
)

// Event is what notification sockets receive.
type Event struct {
	Type         string                 `json:"type"` // notification | dismissed | cleared
	Notification *entities.Notification `json:"notification,omitempty"`
	ID           string                 `json:"id,omitempty"`
}

// Notifier raises toasts for a visitor and pushes them to any open socket.
type Notifier struct {
	queue *cache.NotificationQueue
	hub   *ws.Manager
}

func NewNotifier(queue *cache.NotificationQueue, hub *ws.Manager) *Notifier {
	return &Notifier{queue: queue, hub: hub}
}

func (n *Notifier) Success(visitorID, message string) {
	n.push(visitorID, entities.NotificationSuccess, message)
}

func (n *Notifier) Error(visitorID, message string) {
	n.push(visitorID, entities.NotificationError, message)
}

func (n *Notifier) Warning(visitorID, message string) {
	n.push(visitorID, entities.NotificationWarning, message)
}

func (n *Notifier) Info(visitorID, message string) {
	n.push(visitorID, entities.NotificationInfo, message)
}

func (n *Notifier) push(visitorID string, typ entities.NotificationType, message string) {
	note := n.queue.Push(visitorID, typ, message)
	metrics.NotificationsPushed.WithLabelValues(string(typ)).Inc()
	n.broadcast(visitorID, Event{Type: "notification", Notification: &note})
}

// List returns the visitor's live toasts, newest first.
func (n *Notifier) List(visitorID string) []entities.Notification {
	return n.queue.List(visitorID)
}

func (n *Notifier) Remove(visitorID, id string) bool {
	if !n.queue.Remove(visitorID, id) {
		return false
	}
	n.broadcast(visitorID, Event{Type: "dismissed", ID: id})
	return true
}

func (n *Notifier) Clear(visitorID string) {
	n.queue.Clear(visitorID)
	n.broadcast(visitorID, Event{Type: "cleared"})
}

func (n *Notifier) Stats() map[string]interface{} {
	stats := n.queue.Stats()
	if n.hub != nil {
		stats["connected_visitors"] = len(n.hub.List())
	}
	return stats
}

func (n *Notifier) broadcast(visitorID string, ev Event) {
	if n.hub == nil || !n.hub.IsConnected(visitorID) {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("encode notification event", "error", err)
		return
	}
	if err := n.hub.SendTo(visitorID, payload); err != nil && !errors.Is(err, ws.ErrNotConnected) {
		slog.Debug("notification push failed", "visitor", visitorID, "error", err)
	}
}
