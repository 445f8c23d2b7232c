package ws

import (
	"errors"
	"sync"
	"time"

	"bank-portal/metrics"

	"github.com/gorilla/websocket"
)

var ErrNotConnected = errors.New("visitor not connected")

const writeWait = 5 * time.Second

// Conn is a registered socket. Writes are serialized because gorilla
// connections allow only one concurrent writer.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *Conn) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

// Manager keeps track of the notification sockets each visitor has open.
// A visitor with several tabs has several sockets.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]map[*Conn]struct{} // visitorID -> conns
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]map[*Conn]struct{})}
}

// Register adds a socket for the visitor.
func (m *Manager) Register(visitorID string, ws *websocket.Conn) *Conn {
	c := &Conn{ws: ws}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connections[visitorID] == nil {
		m.connections[visitorID] = make(map[*Conn]struct{})
	}
	m.connections[visitorID][c] = struct{}{}
	metrics.NotificationSockets.Inc()
	return c
}

// Unregister closes and forgets one socket.
func (m *Manager) Unregister(visitorID string, c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.connections[visitorID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	_ = c.ws.Close()
	delete(conns, c)
	metrics.NotificationSockets.Dec()
	if len(conns) == 0 {
		delete(m.connections, visitorID)
	}
}

// SendTo writes payload to every socket of the visitor. Sockets that fail
// are dropped; the first error is returned.
func (m *Manager) SendTo(visitorID string, payload []byte) error {
	m.mu.RLock()
	conns := make([]*Conn, 0, len(m.connections[visitorID]))
	for c := range m.connections[visitorID] {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	if len(conns) == 0 {
		return ErrNotConnected
	}
	var firstErr error
	for _, c := range conns {
		if err := c.write(payload); err != nil {
			m.Unregister(visitorID, c)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// IsConnected returns whether the visitor has at least one socket open.
func (m *Manager) IsConnected(visitorID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[visitorID]) > 0
}

// List returns a copy of the connected visitor IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
