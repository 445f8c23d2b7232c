package httpHandler

import (
	"net/http"

	"bank-portal/middleware"
	"bank-portal/usecases"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	pages *Pages
}

func NewDashboardHandler(pages *Pages) *DashboardHandler {
	return &DashboardHandler{pages: pages}
}

// Dashboard handles GET /dashboard by sending each role to its own dashboard.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	path, ok := usecases.DashboardPath(session.Role)
	if !ok {
		c.Redirect(http.StatusFound, "/unauthorized")
		return
	}
	c.Redirect(http.StatusFound, path)
}

// Unauthorized handles GET /unauthorized
func (h *DashboardHandler) Unauthorized(c *gin.Context) {
	h.pages.Render(c, http.StatusForbidden, "unauthorized", gin.H{"Title": "Unauthorized"})
}
