package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"murmur/config"
	"murmur/internal/notification"
	"murmur/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ notification.RealtimeChannel = (*Hub)(nil)

func startHub(t *testing.T, cfg config.Realtime) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(cfg, nil, logger.Logger{})
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.URL.Query().Get("user"))
		if err != nil {
			http.Error(w, "bad user", http.StatusBadRequest)
			return
		}
		hub.ServeWS(w, r, userID)
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, hub *Hub, srv *httptest.Server, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	before := hub.ConnectedClients(userID)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?user=" + userID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	assert.Eventually(t, func() bool {
		return hub.ConnectedClients(userID) == before+1
	}, time.Second, 10*time.Millisecond)
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func Test_SendToUser(t *testing.T) {
	hub, srv := startHub(t, config.Realtime{})
	alice, bob := uuid.New(), uuid.New()

	aliceTab1 := dial(t, hub, srv, alice)
	aliceTab2 := dial(t, hub, srv, alice)
	bobConn := dial(t, hub, srv, bob)

	hub.SendToUser(alice, "new_message_42", map[string]string{"text": "hi"})

	for _, conn := range []*websocket.Conn{aliceTab1, aliceTab2} {
		env := readEnvelope(t, conn)
		assert.Equal(t, "new_message_42", env.Event)
		assert.Equal(t, map[string]any{"text": "hi"}, env.Payload)
	}

	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := bobConn.ReadMessage()
	assert.Error(t, err, "bob must not receive alice's event")
}

func Test_SendToUser_Offline(t *testing.T) {
	hub, _ := startHub(t, config.Realtime{})

	assert.NotPanics(t, func() {
		hub.SendToUser(uuid.New(), "conversations_updated", nil)
	})
}

func Test_Broadcast(t *testing.T) {
	hub, srv := startHub(t, config.Realtime{})

	conns := []*websocket.Conn{
		dial(t, hub, srv, uuid.New()),
		dial(t, hub, srv, uuid.New()),
	}

	hub.Broadcast("announcement", map[string]string{"title": "maintenance"})

	for _, conn := range conns {
		env := readEnvelope(t, conn)
		assert.Equal(t, "announcement", env.Event)
		assert.Equal(t, map[string]any{"title": "maintenance"}, env.Payload)
	}
}

func Test_Disconnect(t *testing.T) {
	hub, srv := startHub(t, config.Realtime{})
	userID := uuid.New()

	conn := dial(t, hub, srv, userID)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return hub.ConnectedClients(userID) == 0
	}, time.Second, 10*time.Millisecond)
}

func Test_SlowClientDropped(t *testing.T) {
	hub := NewHub(config.Realtime{SendBuffer: 1}, nil, logger.Logger{})
	userID := uuid.New()

	client := &Client{hub: hub, send: make(chan []byte, 1), userID: userID}
	hub.clients[userID] = map[*Client]struct{}{client: {}}

	hub.SendToUser(userID, "first", nil)
	assert.Equal(t, 1, hub.ConnectedClients(userID))

	hub.SendToUser(userID, "second", nil)
	assert.Equal(t, 0, hub.ConnectedClients(userID))

	frame, ok := <-client.send
	require.True(t, ok)
	assert.Contains(t, string(frame), `"event":"first"`)
	_, ok = <-client.send
	assert.False(t, ok, "send queue is closed once the client is dropped")
}

func Test_OriginChecker(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://evil.example")

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))
	assert.False(t, originChecker([]string{"https://app.example"})(req))

	req.Header.Set("Origin", "https://app.example")
	assert.True(t, originChecker([]string{"https://app.example"})(req))
}

func Test_Shutdown(t *testing.T) {
	hub := NewHub(config.Realtime{}, nil, logger.Logger{})
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	served := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, uuid.MustParse(r.URL.Query().Get("user")))
		served <- struct{}{}
	}))
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?user="

	userID := uuid.New()
	live, _, err := websocket.DefaultDialer.Dial(url+userID.String(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { live.Close() })
	assert.Eventually(t, func() bool { return hub.ConnectedClients(userID) == 1 }, time.Second, 10*time.Millisecond)
	<-served

	cancel()
	select {
	case <-hub.Done():
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	// the open connection is closed by the server and its pumps exit
	require.NoError(t, live.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = live.ReadMessage()
	assert.Error(t, err)
	assert.Zero(t, hub.ConnectedClients(userID))

	// a handshake after shutdown is refused instead of hanging
	late, _, err := websocket.DefaultDialer.Dial(url+uuid.NewString(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { late.Close() })

	select {
	case <-served:
	case <-time.After(time.Second):
		t.Fatal("ServeWS blocked after shutdown")
	}

	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
