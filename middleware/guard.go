package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"bank-portal/entities"
	"bank-portal/usecases"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "bank_session"
	sessionKey    = "session"
)

// SessionResolver turns a portal session ID into a verified session.
type SessionResolver interface {
	Current(ctx context.Context, sessionID string) (*entities.Session, error)
}

// Guard gates the dashboards on a live session and, optionally, a role.
type Guard struct {
	tokens   *SessionTokens
	sessions SessionResolver
	secure   bool
}

func NewGuard(tokens *SessionTokens, sessions SessionResolver, secure bool) *Guard {
	return &Guard{tokens: tokens, sessions: sessions, secure: secure}
}

// IssueCookie hands the browser a signed reference to session.
func (g *Guard) IssueCookie(c *gin.Context, session *entities.Session) error {
	token, err := g.tokens.Generate(session.ID, session.Role)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(g.tokens.TTL().Seconds()), "/", "", g.secure, true)
	return nil
}

func (g *Guard) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", g.secure, true)
}

// SessionID reads the session ID out of the signed cookie. Bad or missing cookies give "".
func (g *Guard) SessionID(c *gin.Context) string {
	raw, err := c.Cookie(SessionCookie)
	if err != nil || raw == "" {
		return ""
	}
	claims, err := g.tokens.Validate(raw)
	if err != nil {
		slog.Debug("rejecting session cookie", "error", err)
		return ""
	}
	return claims.SessionID
}

// Lookup resolves the current session without enforcing anything.
func (g *Guard) Lookup(c *gin.Context) *entities.Session {
	id := g.SessionID(c)
	if id == "" {
		return nil
	}
	session, err := g.sessions.Current(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, usecases.ErrNoSession) {
			slog.Warn("session check failed", "error", err)
		}
		return nil
	}
	return session
}

// RequireSession sends visitors without a live session to /login.
func (g *Guard) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := g.Lookup(c)
		if session == nil {
			g.ClearCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireRole must follow RequireSession. Other roles go to /unauthorized.
// With no roles listed any session passes.
func (g *Guard) RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, session.Role) {
			slog.Info("role not allowed", "username", session.Username, "role", session.Role, "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session RequireSession stored, or nil.
func CurrentSession(c *gin.Context) *entities.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*entities.Session)
	return session
}
