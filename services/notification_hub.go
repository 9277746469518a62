package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Banners stay on screen this many milliseconds; the page removes them
// itself, each banner on its own timer.
const bannerTTLMillis = 3000

// Notification is one transient banner. Banners do not queue: concurrent
// ones simply stack as independent elements.
type Notification struct {
	Kind      string `json:"kind"` // success | error
	Message   string `json:"message"`
	ExpiresIn int    `json:"expires_in_ms"`
}

// Notifier is the slice of the hub the form controllers see.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type WSClient struct {
	Conn *websocket.Conn
}

// NotificationHub fans banners out to every connected page.
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{clients: make(map[*WSClient]struct{})}
}

func (h *NotificationHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *NotificationHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *NotificationHub) Success(message string) {
	h.broadcast(Notification{Kind: "success", Message: message, ExpiresIn: bannerTTLMillis})
}

func (h *NotificationHub) Error(message string) {
	h.broadcast(Notification{Kind: "error", Message: message, ExpiresIn: bannerTTLMillis})
}

func (h *NotificationHub) broadcast(n Notification) {
	msg, _ := json.Marshal(n)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
