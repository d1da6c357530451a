// Package spectator broadcasts a running game's events to websocket clients.
// Spectators are read-only: they receive every event published so far on
// connect, then each new event as it happens.
package spectator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pig/internal/game"
)

const shutdownTimeout = 5 * time.Second

// Hub fans game events out to spectators. It is a game.EventSubscriber.
type Hub struct {
	gameID   string
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	backlog []*Message
}

// NewHub creates a hub for one game
func NewHub(gameID string, logger *log.Logger) *Hub {
	return &Hub{
		gameID: gameID,
		upgrader: websocket.Upgrader{
			// Spectating is read-only, any origin may watch
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger.WithPrefix("spectator"),
		clients: make(map[*client]struct{}),
	}
}

// OnEvent implements game.EventSubscriber
func (h *Hub) OnEvent(event game.GameEvent) {
	msg := NewMessage(h.gameID, event)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.backlog = append(h.backlog, msg)
	for c := range h.clients {
		if !c.enqueue(msg) {
			delete(h.clients, c)
		}
	}
}

// Handler returns the hub's HTTP routes: /ws and /health.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWebSocket)
	mux.HandleFunc("/health", h.handleHealth)
	return mux
}

// Serve listens on addr until ctx is cancelled, then disconnects every spectator.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectator listen: %w", err)
	}
	return h.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (h *Hub) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		h.Close()
	}()

	h.logger.Info("Spectator server listening", "addr", ln.Addr().String(), "game", h.gameID)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectator serve: %w", err)
	}
	return nil
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}

// Spectators returns the number of connected spectators.
func (h *Hub) Spectators() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	h.mu.Lock()
	c := newClient(conn, len(h.backlog), h.logger)
	for _, msg := range h.backlog {
		c.enqueue(msg)
	}
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Spectator connected", "remote", r.RemoteAddr, "total", total)
	c.start()

	go func() {
		<-c.ctx.Done()
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		h.logger.Debug("Spectator disconnected", "remote", r.RemoteAddr)
	}()
}

func (h *Hub) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "ok")
}
