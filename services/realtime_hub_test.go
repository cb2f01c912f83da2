package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *RealtimeHub, userID uint) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(&WSClient{UserID: userID, Conn: conn})
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userID]) == 1
	}, time.Second, 10*time.Millisecond)
	return conn
}

func TestRealtimeHubBroadcastReachesClient(t *testing.T) {
	hub := NewRealtimeHub()
	conn := dialTestHub(t, hub, 7)

	hub.Broadcast(7, map[string]string{"type": "goal_completed", "message": "Goal reached"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(msg), "goal_completed")
}

func TestRealtimeHubUnregisterDropsUser(t *testing.T) {
	hub := NewRealtimeHub()
	dialTestHub(t, hub, 7)

	hub.mu.RLock()
	var client *WSClient
	for c := range hub.clients[7] {
		client = c
	}
	hub.mu.RUnlock()
	require.NotNil(t, client)

	hub.Unregister(client)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	require.Empty(t, hub.clients[7])
}

func TestRealtimeHubBroadcastEvictsDeadConn(t *testing.T) {
	hub := NewRealtimeHub()
	dialTestHub(t, hub, 7)

	hub.mu.RLock()
	var client *WSClient
	for c := range hub.clients[7] {
		client = c
	}
	hub.mu.RUnlock()
	require.NotNil(t, client)

	// Kill the server-side socket so the next write fails.
	require.NoError(t, client.Conn.Close())

	hub.Broadcast(7, map[string]string{"type": "goal_completed"})

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	require.Empty(t, hub.clients[7])
}
