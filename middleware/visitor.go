package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "bank_visitor"
	visitorKey    = "visitor_id"
	visitorMaxAge = 365 * 24 * 60 * 60
)

// Visitor gives every browser a stable random ID before anything else runs.
// Toasts are keyed by it, so errors on the login page have somewhere to go.
func Visitor(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, visitorMaxAge, "/", "", secure, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

// VisitorID returns the ID set by Visitor, or "" outside of it.
func VisitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}
