package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// connWithMutex wraps a WebSocket connection with its own mutex for thread-safe writes.
type connWithMutex struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// StreamManager tracks the open background streams.
type StreamManager struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]*connWithMutex
}

// NewStreamManager creates an empty manager.
func NewStreamManager() *StreamManager {
	return &StreamManager{
		connections: make(map[*websocket.Conn]*connWithMutex),
	}
}

// Add adds a connection to the manager.
func (m *StreamManager) Add(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn] = &connWithMutex{
		conn: conn,
	}
}

// Remove removes a connection from the manager.
func (m *StreamManager) Remove(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.connections, conn)
}

// Len returns the number of open streams.
func (m *StreamManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// WriteJSON safely writes JSON to a specific connection using its mutex.
func (m *StreamManager) WriteJSON(conn *websocket.Conn, message interface{}) error {
	m.mu.RLock()
	cwm, exists := m.connections[conn]
	m.mu.RUnlock()

	if !exists {
		return conn.WriteJSON(message)
	}

	cwm.mu.Lock()
	defer cwm.mu.Unlock()
	return cwm.conn.WriteJSON(message)
}

// CloseAll sends a close frame to every stream and forgets them.
func (m *StreamManager) CloseAll() {
	m.mu.Lock()
	conns := make([]*connWithMutex, 0, len(m.connections))
	for conn, cwm := range m.connections {
		conns = append(conns, cwm)
		delete(m.connections, conn)
	}
	m.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, cwm := range conns {
		cwm.mu.Lock()
		cwm.conn.WriteMessage(websocket.CloseMessage, msg)
		cwm.mu.Unlock()
		cwm.conn.Close()
	}
}
