package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds a single write to a client.
const writeWait = 5 * time.Second

// Hub tracks live connections in process and fans messages out to all of them.
type Hub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	conns map[string]*client
}

// client serializes writes; a websocket connection allows one writer at a time.
type client struct {
	mu   sync.Mutex
	conn Conn
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger, conns: make(map[string]*client)}
}

// Make sure we conform to the interfaces
var (
	_ ConnectionManager = (*Hub)(nil)
	_ Publisher         = (*Hub)(nil)
)

// AddConnection registers a connection under connectionID.
func (h *Hub) AddConnection(ctx context.Context, connectionID string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[connectionID]; ok {
		return fmt.Errorf("connection %s already registered", connectionID)
	}
	h.conns[connectionID] = &client{conn: conn}
	return nil
}

// RemoveConnection forgets a connection. Removing an unknown id is not an error.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, connectionID)
	return nil
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish sends a message to all connected clients. Clients that fail a write are
// closed and dropped.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mu.RLock()
	targets := make(map[string]*client, len(h.conns))
	for id, c := range h.conns {
		targets[id] = c
	}
	h.mu.RUnlock()

	for connectionID, c := range targets {
		if err := c.write(payload); err != nil {
			h.logger.Info("stale connection found, deleting", "connectionId", connectionID, "error", err)
			_ = h.RemoveConnection(ctx, connectionID)
			_ = c.conn.Close()
		}
	}
	return nil
}

func (c *client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}
