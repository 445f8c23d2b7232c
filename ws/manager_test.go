package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dial opens a client socket against a server that registers the peer for visitorID.
func dial(t *testing.T, m *Manager, visitorID string) (*websocket.Conn, <-chan *Conn) {
	t.Helper()
	registered := make(chan *Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		registered <- m.Register(visitorID, conn)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, registered
}

func TestSendToReachesEverySocket(t *testing.T) {
	m := NewManager()
	c1, r1 := dial(t, m, "v1")
	c2, r2 := dial(t, m, "v1")
	<-r1
	<-r2

	require.True(t, m.IsConnected("v1"))
	require.NoError(t, m.SendTo("v1", []byte(`{"type":"notification"}`)))

	for _, c := range []*websocket.Conn{c1, c2} {
		_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := c.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"notification"}`, string(msg))
	}
}

func TestUnregisterForgetsVisitor(t *testing.T) {
	m := NewManager()
	_, r := dial(t, m, "v1")
	conn := <-r

	assert.Equal(t, []string{"v1"}, m.List())
	m.Unregister("v1", conn)
	assert.False(t, m.IsConnected("v1"))
	assert.Empty(t, m.List())

	// second unregister is a no-op
	m.Unregister("v1", conn)
}

func TestSendToUnknownVisitor(t *testing.T) {
	m := NewManager()
	assert.ErrorIs(t, m.SendTo("ghost", []byte("x")), ErrNotConnected)
}
