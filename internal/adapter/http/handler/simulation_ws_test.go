package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	ws "github.com/kavitasoren02/greencart-logistics/pkg/wsHub"
)

func TestSimulationFeed_Publish(t *testing.T) {
	hub := ws.NewConnHub(discard)
	t.Cleanup(hub.Close)
	feed := NewSimulationFeed(hub, discard)

	srv := httptest.NewServer(http.HandlerFunc(feed.HandleWS))
	t.Cleanup(srv.Close)

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("client was not registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	event := models.SimulationCompletedEvent{
		SimulationID: uuid.New(),
		Results:      models.KPIResults{TotalOrders: 3, EfficiencyScore: 66.67},
	}
	if err := feed.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg FeedMessage
	if err := c.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != feedMessageType {
		t.Fatalf("unexpected type %q", msg.Type)
	}
	if msg.Data.SimulationID != event.SimulationID || msg.Data.Results != event.Results {
		t.Fatalf("unexpected payload %+v", msg.Data)
	}
}

func TestSimulationFeed_RejectsPlainHTTP(t *testing.T) {
	feed := NewSimulationFeed(ws.NewConnHub(discard), discard)

	rec := httptest.NewRecorder()
	feed.HandleWS(rec, httptest.NewRequest(http.MethodGet, "/ws/simulations", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
