package services

import (
	"encoding/json"
	"sync"

	"backend/models"
	"backend/utils"

	"github.com/gorilla/websocket"
)

// wsConn is the slice of *websocket.Conn the hub needs; tests substitute a
// fake.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type ChatClient struct {
	UserID     uint
	AdminWatch bool // receives every message event plus presence changes
	Conn       wsConn
}

// ChatHub fans realtime chat events out to connected sockets: each user has
// a channel carrying their own thread, and admin consoles watch a global
// feed. Presence is simply "has at least one open socket".
type ChatHub struct {
	mu       sync.RWMutex
	clients  map[uint]map[*ChatClient]struct{}
	watchers map[*ChatClient]struct{}
}

func NewChatHub() *ChatHub {
	return &ChatHub{
		clients:  make(map[uint]map[*ChatClient]struct{}),
		watchers: make(map[*ChatClient]struct{}),
	}
}

func (h *ChatHub) Register(c *ChatClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*ChatClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	wentOnline := len(h.clients[c.UserID]) == 1
	if c.AdminWatch {
		h.watchers[c] = struct{}{}
	}
	h.mu.Unlock()

	utils.WSConnections.Inc()
	if wentOnline {
		h.notifyPresence(c.UserID, true)
	}
}

func (h *ChatHub) Unregister(c *ChatClient) {
	h.mu.Lock()
	wentOffline := false
	if set := h.clients[c.UserID]; set != nil {
		if _, ok := set[c]; ok {
			delete(set, c)
			utils.WSConnections.Dec()
		}
		if len(set) == 0 {
			delete(h.clients, c.UserID)
			wentOffline = true
		}
	}
	delete(h.watchers, c)
	h.mu.Unlock()

	_ = c.Conn.Close()
	if wentOffline {
		h.notifyPresence(c.UserID, false)
	}
}

func (h *ChatHub) IsOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

func (h *ChatHub) send(c *ChatClient, msg []byte) {
	_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// BroadcastToUser delivers a payload on one user's channel.
func (h *ChatHub) BroadcastToUser(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		h.send(c, msg)
	}
}

// BroadcastMessage pushes a message.created event to the thread owner and to
// every admin watcher. The client tag rides along so an optimistic sender
// can replace its pending entry when the echo arrives.
func (h *ChatHub) BroadcastMessage(m *models.Message) {
	msg, _ := json.Marshal(map[string]any{
		"kind":       "message.created",
		"message":    m,
		"client_tag": m.ClientTag,
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[m.UserID] {
		h.send(c, msg)
	}
	for c := range h.watchers {
		if c.UserID == m.UserID {
			continue // already got it on the user channel
		}
		h.send(c, msg)
	}
}

func (h *ChatHub) notifyPresence(userID uint, online bool) {
	msg, _ := json.Marshal(map[string]any{
		"kind":    "presence",
		"user_id": userID,
		"online":  online,
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.watchers {
		h.send(c, msg)
	}
}
