package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	ws "github.com/kavitasoren02/greencart-logistics/pkg/wsHub"
)

const feedMessageType = "simulation.completed"

// FeedMessage is what feed clients receive for every completed run.
type FeedMessage struct {
	Type string                          `json:"type"`
	Data models.SimulationCompletedEvent `json:"data"`
}

// SimulationFeed streams completed runs to websocket clients.
type SimulationFeed struct {
	hub      *ws.ConnectionHub
	upgrader websocket.Upgrader
	l        logger.Logger
}

func NewSimulationFeed(hub *ws.ConnectionHub, l logger.Logger) *SimulationFeed {
	return &SimulationFeed{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

// HandleWS godoc
// @Summary      Live simulation feed
// @Description  Upgrades to a websocket that receives a message for every completed simulation
// @Tags         Simulations
// @Success      101
// @Router       /ws/simulations [get]
func (h *SimulationFeed) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "simulation_feed_connect")

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.l.Warn(ctx, "failed to upgrade connection", "error", err)
		return
	}

	// The request context ends once the handler returns, so the connection
	// gets its own.
	conn := ws.NewConn(context.Background(), raw)
	if err := h.hub.Add(conn); err != nil {
		h.l.Warn(ctx, "failed to register feed connection", "error", err)
		_ = conn.Close()
		return
	}
	h.l.Debug(ctx, "feed client connected", "conn_id", conn.ID().String(), "clients", h.hub.Count())

	if err := conn.Listen(); err != nil {
		h.l.Debug(ctx, "feed client stopped listening", "conn_id", conn.ID().String(), "error", err)
	}

	_ = h.hub.Delete(conn.ID())
	h.l.Debug(ctx, "feed client disconnected", "conn_id", conn.ID().String())
}

// Publish broadcasts a completed run to every connected client. It never fails:
// a client that cannot be written to is dropped by the hub.
func (h *SimulationFeed) Publish(ctx context.Context, event models.SimulationCompletedEvent) error {
	ctx = wrap.WithSimulationID(wrap.WithAction(ctx, "simulation_feed_broadcast"), event.SimulationID.String())

	sent := h.hub.Broadcast(ctx, FeedMessage{Type: feedMessageType, Data: event})
	h.l.Debug(ctx, "broadcast completed simulation", "clients", sent)

	return nil
}
