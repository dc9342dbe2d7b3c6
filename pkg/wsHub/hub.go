package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/metrics"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
	ErrHubClosed      = errors.New("hub is closed")
)

// ConnectionHub keeps every live feed connection and fans messages out to them.
type ConnectionHub struct {
	clients map[uuid.UUID]*Conn
	closed  bool
	l       logger.Logger
	mu      sync.Mutex
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[uuid.UUID]*Conn),
		l:       l,
	}
}

func (h *ConnectionHub) Add(c *Conn) error {
	if c == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	h.clients[c.id] = c
	metrics.WebSocketConnectionsGauge.Set(float64(len(h.clients)))

	return nil
}

// Delete removes and closes the connection with the given id.
func (h *ConnectionHub) Delete(id uuid.UUID) error {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		metrics.WebSocketConnectionsGauge.Set(float64(len(h.clients)))
	}
	h.mu.Unlock()

	if !ok {
		return ErrConnIsNotFound
	}

	if err := c.Close(); err != nil {
		h.l.Debug(wrap.WithAction(context.Background(), "ws_connection_delete"),
			"failed to close conn", "conn_id", id.String(), "error", err)
	}
	return nil
}

// Broadcast sends msg to every connection and drops the ones that fail.
// It returns how many connections received the message.
func (h *ConnectionHub) Broadcast(ctx context.Context, msg any) int {
	clients := h.snapshot()

	sent := 0
	for _, c := range clients {
		if err := c.Send(msg); err != nil {
			h.l.Debug(ctx, "dropping websocket client", "conn_id", c.id.String(), "error", err)
			_ = h.Delete(c.id)
			continue
		}
		sent++
	}
	return sent
}

func (h *ConnectionHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *ConnectionHub) snapshot() []*Conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Conn, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

// Close closes every connection; later Adds fail with ErrHubClosed.
func (h *ConnectionHub) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	for _, c := range h.snapshot() {
		_ = h.Delete(c.id)
	}

	h.l.Info(wrap.WithAction(context.Background(), "hub_close"), "all websocket connections closed gracefully")
}
