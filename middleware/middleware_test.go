package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-portal/entities"
	"bank-portal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubResolver struct {
	sessions map[string]*entities.Session
	err      error
}

func (r *stubResolver) Current(_ context.Context, id string) (*entities.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.sessions[id]
	if !ok {
		return nil, usecases.ErrNoSession
	}
	return s, nil
}

func TestSessionTokens(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)

	signed, err := tokens.Generate("sess-1", entities.RoleManager)
	require.NoError(t, err)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, entities.RoleManager, claims.Role)

	_, err = NewSessionTokens("other", time.Hour).Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewSessionTokens("secret", -time.Minute).Generate("sess-1", entities.RoleCustomer)
	require.NoError(t, err)
	_, err = tokens.Validate(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVisitorCookieIsStable(t *testing.T) {
	r := gin.New()
	r.Use(Visitor(false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, VisitorID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	first := w.Body.String()
	require.NotEmpty(t, first)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())
	assert.Empty(t, w.Result().Cookies())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "garbage"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "garbage", w.Body.String())
}

func guardedRouter(g *Guard, roles ...entities.Role) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard/x", g.RequireSession(), g.RequireRole(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, "hello "+CurrentSession(c).Username)
	})
	return r
}

func withSession(t *testing.T, tokens *SessionTokens, id string) *http.Request {
	t.Helper()
	signed, err := tokens.Generate(id, entities.RoleCustomer)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/x", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})
	return req
}

func TestGuardRedirects(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)
	resolver := &stubResolver{sessions: map[string]*entities.Session{
		"cust": {ID: "cust", Username: "jane", Role: entities.RoleCustomer},
		"emp":  {ID: "emp", Username: "raj", Role: entities.RoleEmployee},
	}}
	r := guardedRouter(NewGuard(tokens, resolver, false), entities.RoleCustomer)

	cases := []struct {
		name     string
		req      *http.Request
		status   int
		location string
	}{
		{"no cookie", httptest.NewRequest(http.MethodGet, "/dashboard/x", nil), http.StatusFound, "/login"},
		{"unknown session", withSession(t, tokens, "gone"), http.StatusFound, "/login"},
		{"wrong role", withSession(t, tokens, "emp"), http.StatusFound, "/unauthorized"},
		{"allowed", withSession(t, tokens, "cust"), http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, tc.req)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(t, tokens, "cust"))
	assert.Equal(t, "hello jane", w.Body.String())
}

func TestGuardTreatsUpstreamFailureAsLoggedOut(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)
	resolver := &stubResolver{err: errors.New("auth service down")}
	r := guardedRouter(NewGuard(tokens, resolver, false))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withSession(t, tokens, "cust"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestIssueCookie(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)
	g := NewGuard(tokens, &stubResolver{}, true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, g.IssueCookie(c, &entities.Session{ID: "abc", Role: entities.RoleCustomer}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	assert.Equal(t, "abc", g.SessionID(c))
}
