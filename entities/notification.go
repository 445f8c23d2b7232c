package entities

import "time"

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Icon is the glyph rendered next to a toast.
func (t NotificationType) Icon() string {
	switch t {
	case NotificationSuccess:
		return "✓"
	case NotificationError:
		return "✕"
	case NotificationWarning:
		return "⚠"
	case NotificationInfo:
		return "ℹ"
	default:
		return ""
	}
}

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}
