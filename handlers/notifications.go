package handlers

import (
	"net/http"

	"bank-portal/middleware"
	"bank-portal/services"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the current visitor's toast queue as JSON.
type NotificationHandler struct {
	notifier *services.Notifier
}

func NewNotificationHandler(notifier *services.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notes := h.notifier.List(middleware.VisitorID(c))
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"count":         len(notes),
		"notifications": notes,
	})
}

// Dismiss DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	id := c.Param("id")
	if !h.notifier.Remove(middleware.VisitorID(c), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found", "id": id})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "dismissed", "id": id})
}

// Clear DELETE /api/v1/notifications
func (h *NotificationHandler) Clear(c *gin.Context) {
	h.notifier.Clear(middleware.VisitorID(c))
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Stats GET /api/v1/notifications/stats
func (h *NotificationHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.notifier.Stats(),
	})
}
