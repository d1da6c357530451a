package spectator

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pig/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Type   string          `json:"type"`
	GameID string          `json:"game_id"`
	Data   json.RawMessage `json:"data"`
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestHub_BroadcastsEvents(t *testing.T) {
	hub := NewHub("game-1", log.New(io.Discard))
	server := httptest.NewServer(hub.Handler())
	defer server.Close()
	defer hub.Close()

	first := dial(t, server)
	second := dial(t, server)

	hub.OnEvent(game.NewHoldEvent(game.PlayerState{Name: "Ann", Score: 12}, 12, time.Now()))

	for _, conn := range []*websocket.Conn{first, second} {
		f := readFrame(t, conn)
		assert.Equal(t, "hold", f.Type)
		assert.Equal(t, "game-1", f.GameID)

		var data struct {
			Banked int `json:"banked"`
			Player struct {
				Name string `json:"name"`
			} `json:"player"`
		}
		require.NoError(t, json.Unmarshal(f.Data, &data))
		assert.Equal(t, 12, data.Banked)
		assert.Equal(t, "Ann", data.Player.Name)
	}
}

func TestHub_ReplaysBacklogToLateSpectators(t *testing.T) {
	hub := NewHub("game-2", log.New(io.Discard))
	server := httptest.NewServer(hub.Handler())
	defer server.Close()
	defer hub.Close()

	now := time.Now()
	hub.OnEvent(game.NewGameStartEvent(nil, game.Unbounded(), 100, now))
	hub.OnEvent(game.NewTurnStartEvent(game.PlayerState{Name: "Ann"}, now))

	conn := dial(t, server)
	hub.OnEvent(game.NewProgressEvent(game.PlayerState{Name: "Ann", TurnScore: 4}, 4, now))

	var types []string
	for range 3 {
		types = append(types, readFrame(t, conn).Type)
	}
	assert.Equal(t, []string{"game_start", "turn_start", "progress"}, types)
}

func TestHub_Health(t *testing.T) {
	hub := NewHub("game-3", log.New(io.Discard))
	server := httptest.NewServer(hub.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestHub_ServeStopsOnCancel(t *testing.T) {
	hub := NewHub("game-4", log.New(io.Discard))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.ServeListener(ctx, ln) }()

	url := "ws://" + ln.Addr().String() + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
	assert.Eventually(t, func() bool { return hub.Spectators() == 0 }, 5*time.Second, 10*time.Millisecond)
}
