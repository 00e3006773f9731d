// Package ws maintains the set of connected admin dashboard sessions and
// broadcasts order events to them. Sessions live for the life of their
// connection; events sent while a dashboard is offline are simply lost.
package ws

import (
	"net/http"
	"sync"
	"time"

	"chowline/internal/adapter/logger"

	"github.com/gorilla/websocket"
)

const defaultWriteTimeout = 5 * time.Second

type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type Hub struct {
	logger       logger.Logger
	upgrader     websocket.Upgrader
	writeTimeout time.Duration

	mu       sync.Mutex
	sessions map[*websocket.Conn]struct{}
}

func NewHub(lgr logger.Logger) *Hub {
	return &Hub{
		logger:       lgr,
		writeTimeout: defaultWriteTimeout,
		upgrader: websocket.Upgrader{
			// Dashboards are served from a separate origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[*websocket.Conn]struct{}),
	}
}

// HandleConnect upgrades the request and keeps the session registered
// until the peer disconnects.
func (h *Hub) HandleConnect(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("ws_upgrade_failed", "Failed to upgrade connection", "", nil, err)
		return
	}

	h.add(conn)
	h.logger.Info("dashboard_connected", "Admin dashboard connected", "", map[string]interface{}{
		"sessions": h.Count(),
	})

	// Drain the connection; the first read error means the peer is gone.
	go func() {
		defer func() {
			h.remove(conn)
			conn.Close()
			h.logger.Info("dashboard_disconnected", "Admin dashboard disconnected", "", map[string]interface{}{
				"sessions": h.Count(),
			})
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends the event to every connected session. Each write runs
// under a deadline so a dashboard that stopped reading cannot stall the
// hub; deadline hits and write failures drop the session.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.sessions {
		conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := conn.WriteJSON(Event{Event: event, Data: payload}); err != nil {
			h.logger.Error("broadcast_failed", "Dropping dashboard session", "", map[string]interface{}{
				"event": event,
			}, err)
			conn.Close()
			delete(h.sessions, conn)
		}
	}
}

// Count reports the number of connected sessions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, conn)
}
