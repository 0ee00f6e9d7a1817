package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/tavernkeep/companion-api/internal/battle"
)

const broadcastWriteTimeout = 5 * time.Second

// Hub tracks every live gateway connection and fans battle events out to
// all of them
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// ConnectionCount returns the number of live connections
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// BroadcastBattleEvent pushes a battle event to every connection. A
// connection that cannot be written to is dropped; the loop never blocks
// on one slow client for long.
func (h *Hub) BroadcastBattleEvent(ctx context.Context, event *battle.BattleEvent) {
	payload, err := json.Marshal(&Response{
		Action: EventBattleStarted,
		OK:     true,
		Data:   event,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal battle event push", "error", err)
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, broadcastWriteTimeout)
		err := conn.Write(writeCtx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			slog.WarnContext(ctx, "dropping unwritable gateway connection", "error", err)
			h.unregister(conn)
			_ = conn.Close(websocket.StatusPolicyViolation, "write failed")
		}
	}
}
