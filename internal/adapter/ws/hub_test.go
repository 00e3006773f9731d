package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chowline/internal/adapter/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(hub *Hub) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(hub.HandleConnect))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d sessions (have %d)", want, hub.Count())
}

func TestBroadcastReachesAllSessions(t *testing.T) {
	hub := NewHub(logger.New("test"))
	srv := newTestServer(hub)
	defer srv.Close()

	first := dial(t, srv)
	defer first.Close()
	second := dial(t, srv)
	defer second.Close()

	waitForCount(t, hub, 2)

	hub.Broadcast("newOrder", map[string]any{"reference": "PSK123"})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, "newOrder", event.Event)
	}
}

func TestDisconnectRemovesSession(t *testing.T) {
	hub := NewHub(logger.New("test"))
	srv := newTestServer(hub)
	defer srv.Close()

	first := dial(t, srv)
	second := dial(t, srv)
	defer second.Close()
	waitForCount(t, hub, 2)

	first.Close()
	waitForCount(t, hub, 1)

	// Broadcasting after a disconnect must not block or panic.
	hub.Broadcast("orderUpdated", map[string]any{"reference": "PSK123"})

	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, second.ReadJSON(&event))
	assert.Equal(t, "orderUpdated", event.Event)
}

func TestBroadcastDropsStalledSession(t *testing.T) {
	hub := NewHub(logger.New("test"))
	hub.writeTimeout = 200 * time.Millisecond
	srv := newTestServer(hub)
	defer srv.Close()

	stalled := dial(t, srv)
	defer stalled.Close()
	waitForCount(t, hub, 1)

	// The peer never reads, so broadcasts pile up in its buffers until
	// writes start hitting the deadline.
	payload := map[string]any{"blob": strings.Repeat("x", 1<<20)}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 64; i++ {
			hub.Broadcast("newOrder", payload)
			if hub.Count() == 0 {
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("broadcast wedged behind a stalled session")
	}
	waitForCount(t, hub, 0)

	// The hub must still serve fresh sessions after the drop.
	healthy := dial(t, srv)
	defer healthy.Close()
	waitForCount(t, hub, 1)

	hub.Broadcast("newOrder", map[string]any{"reference": "PSK123"})

	healthy.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, healthy.ReadJSON(&event))
	assert.Equal(t, "newOrder", event.Event)
}

func TestBroadcastWithNoSessions(t *testing.T) {
	hub := NewHub(logger.New("test"))

	hub.Broadcast("newOrder", map[string]any{"reference": "PSK123"})

	assert.Zero(t, hub.Count())
}
