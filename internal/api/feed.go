package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// FeedHub fans logged events out to websocket subscribers. Subscriptions
// are process-local; a restart drops them and clients reconnect.
type FeedHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan game.EventRecord
}

func NewFeedHub() *FeedHub {
	return &FeedHub{clients: make(map[*websocket.Conn]chan game.EventRecord)}
}

// Publish delivers an event to every subscriber. Slow clients are
// dropped rather than blocking the game loop.
func (h *FeedHub) Publish(ev game.EventRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.clients {
		select {
		case ch <- ev:
		default:
			close(ch)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

func (h *FeedHub) subscribe(conn *websocket.Conn) chan game.EventRecord {
	ch := make(chan game.EventRecord, 32)
	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()
	return ch
}

func (h *FeedHub) unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	if ch, ok := h.clients[conn]; ok {
		close(ch)
		delete(h.clients, conn)
	}
	h.mu.Unlock()
	_ = conn.Close()
}

// Serve upgrades the request and streams events until the client goes
// away.
func (h *FeedHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{
			constants.LogFieldAddr: c.ClientIP(),
		})
		return
	}
	ch := h.subscribe(conn)

	// Drain reads so close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unsubscribe(conn)
				return
			}
		}
	}()

	for ev := range ch {
		if err := conn.WriteJSON(ev); err != nil {
			h.unsubscribe(conn)
			return
		}
	}
}
